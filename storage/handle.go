// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// PoolHandle - a prefixed section of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// read a value for a given key
//
// returns nil, nil if the key is not present
func (p *PoolHandle) get(db *leveldb.DB, key []byte) ([]byte, error) {
	value, err := db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// queue a write in a batch
func (p *PoolHandle) put(batch *leveldb.Batch, key []byte, value []byte) {
	batch.Put(p.prefixKey(key), value)
}

// a key range within the pool, nil limit is the end of the pool
func (p *PoolHandle) newRange(start []byte, limit []byte) *ldb_util.Range {
	r := &ldb_util.Range{
		Start: p.prefixKey(start), // Start of key range, included in the range
		Limit: p.limit,            // Limit of key range, excluded from the range
	}
	if nil != limit {
		r.Limit = p.prefixKey(limit)
	}
	return r
}

// every key in the pool beginning with the prefix
func (p *PoolHandle) prefixRange(prefix []byte) *ldb_util.Range {
	return ldb_util.BytesPrefix(p.prefixKey(prefix))
}

func (p *PoolHandle) newIterator(db *leveldb.DB, searchRange *ldb_util.Range) iterator.Iterator {
	return db.NewIterator(searchRange, nil)
}

// strip the prefix and copy the iterator's current element
//
// contents of the iterator's slices must not be modified, and are
// only valid until the next call to Next
func (p *PoolHandle) element(iter iterator.Iterator) Element {
	key := iter.Key()
	value := iter.Value()

	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
