// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/util"
)

// key in the sequence pool
var historySequenceKey = []byte("history")

// stored form of one history entry
type historyRecord struct {
	TxID      string    `json:"txId"`
	Timestamp time.Time `json:"timestamp"`
	Value     []byte    `json:"value"`
}

// length ++ key, the common prefix of all history entries of a key
func historyPrefix(key string) []byte {
	prefix := make([]byte, 0, util.Varint64MaximumBytes+len(key)+8)
	prefix = util.AppendVarint64(prefix, uint64(len(key)))
	return append(prefix, key...)
}

func historyKey(key string, sequence uint64) []byte {
	k := historyPrefix(key)
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, sequence)
	return append(k, n...)
}

// inverse of historyKey
func splitHistoryKey(k []byte) (string, uint64, error) {
	length, rest, err := util.ReadVarint64(k)
	if nil != err {
		return "", 0, err
	}
	if length > uint64(len(rest)) || 8 != uint64(len(rest))-length {
		return "", 0, fault.ErrDecodeFailed
	}
	return string(rest[:length]), binary.BigEndian.Uint64(rest[length:]), nil
}

// historyCursor - modifications of a single key, oldest first
type historyCursor struct {
	key    string
	cursor *rangeCursor
}

func (c *historyCursor) HasNext() bool {
	return c.cursor.HasNext()
}

func (c *historyCursor) Next() (*ledger.KeyModification, error) {
	kv, err := c.cursor.Next()
	if nil != err {
		return nil, err
	}

	key, _, err := splitHistoryKey([]byte(kv.Key))
	if nil != err || key != c.key {
		return nil, fault.ErrDecodeFailed
	}

	var r historyRecord
	if err := json.Unmarshal(kv.Value, &r); nil != err {
		return nil, fault.ErrDecodeFailed
	}
	return &ledger.KeyModification{
		TxID:      r.TxID,
		Timestamp: r.Timestamp,
		Value:     r.Value,
		IsDelete:  false,
	}, nil
}

func (c *historyCursor) Close() error {
	return c.cursor.Close()
}
