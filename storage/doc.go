// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk world state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = world state key (UTF-8 text, composite keys begin with 0x00)
// 4. length       = Varint64 byte count of key
// 5. sequence     = successive history value as big endian uint64 (8 bytes)
//
// World state:
//
//	S ++ key                   - current value of a key
//	                             data: value bytes as written
//
// History:
//
//	H ++ length ++ key ++ sequence
//	                           - one entry for every write of a non-composite key
//	                             data: JSON {txId, timestamp, value}
//
// Sequence:
//
//	N ++ "history"             - last sequence number used
//	                             data: sequence
package storage
