// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kycledger/compositekey"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/query"
)

// plain range scans start here so composite keys are excluded
const emptyKeySubstitute = "\x01"

// pages grow on demand beyond this
const initialPageCapacity = 16

// Transaction - a ledger transaction over the world state
//
// writes are batched and only reach the database on Commit; Get
// sees the batch, iterators see committed data
type Transaction struct {
	txID      string
	timestamp time.Time
	database  *leveldb.DB
	batch     *leveldb.Batch
	writeSet  *writeSet
	sequence  uint64
	loaded    bool // sequence has been read
	done      bool
}

// NewTransaction - start a transaction
//
// blocks while another transaction is open; the caller must
// Commit or Abort to release it
func NewTransaction() (*Transaction, error) {
	poolData.RLock()
	if nil == poolData.database {
		poolData.RUnlock()
		return nil, fault.ErrLedgerUnavailable
	}
	poolData.transaction.Lock()

	return &Transaction{
		txID:      uuid.New().String(),
		timestamp: time.Now().UTC(),
		database:  poolData.database,
		batch:     new(leveldb.Batch),
		writeSet:  poolData.writeSet,
	}, nil
}

// GetTxID - unique id of this transaction
func (t *Transaction) GetTxID() string {
	return t.txID
}

// GetTxTimestamp - time the transaction started
func (t *Transaction) GetTxTimestamp() time.Time {
	return t.timestamp
}

// GetState - current value of a key, nil if absent
func (t *Transaction) GetState(key string) ([]byte, error) {
	if t.done {
		return nil, fault.ErrTransactionAlreadyEnded
	}
	if value, found := t.writeSet.Get(key); found {
		return value, nil
	}
	return Pool.State.get(t.database, []byte(key))
}

// PutState - queue a write, recording history for non-composite keys
func (t *Transaction) PutState(key string, value []byte) error {
	if t.done {
		return fault.ErrTransactionAlreadyEnded
	}
	if "" == key {
		return fault.ErrInvalidKey
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	Pool.State.put(t.batch, []byte(key), stored)
	t.writeSet.Set(key, stored)

	if compositekey.IsComposite(key) {
		return nil
	}
	return t.putHistory(key, stored)
}

func (t *Transaction) putHistory(key string, value []byte) error {
	if !t.loaded {
		n, err := Pool.Sequence.get(t.database, historySequenceKey)
		if nil != err {
			return err
		}
		if 8 == len(n) {
			t.sequence = binary.BigEndian.Uint64(n)
		}
		t.loaded = true
	}
	t.sequence += 1

	record, err := json.Marshal(historyRecord{
		TxID:      t.txID,
		Timestamp: t.timestamp,
		Value:     value,
	})
	if nil != err {
		return err
	}

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, t.sequence)
	Pool.Sequence.put(t.batch, historySequenceKey, n)
	Pool.History.put(t.batch, historyKey(key, t.sequence), record)
	return nil
}

// GetStateByRange - committed entries with startKey <= key < endKey
func (t *Transaction) GetStateByRange(startKey string, endKey string) (ledger.StateIterator, error) {
	if t.done {
		return nil, fault.ErrTransactionAlreadyEnded
	}
	return t.rangeCursor(startKey, endKey), nil
}

func (t *Transaction) rangeCursor(startKey string, endKey string) *rangeCursor {
	if "" == startKey {
		startKey = emptyKeySubstitute
	}
	var limit []byte
	if "" != endKey {
		limit = []byte(endKey)
	}
	r := Pool.State.newRange([]byte(startKey), limit)
	return newRangeCursor(Pool.State, Pool.State.newIterator(t.database, r))
}

// GetStateByRangeWithPagination - a page of at most pageSize entries
//
// the bookmark is the base58 encoding of the first key of the next
// page, empty when there are no more entries
func (t *Transaction) GetStateByRangeWithPagination(startKey string, endKey string, pageSize int32, bookmark string) (ledger.StateIterator, *ledger.PageMetadata, error) {
	if t.done {
		return nil, nil, fault.ErrTransactionAlreadyEnded
	}
	if pageSize <= 0 {
		return nil, nil, fault.ErrInvalidCount
	}

	if "" != bookmark {
		resume, err := base58.Decode(bookmark)
		if nil != err || 0 == len(resume) || compositekey.IsComposite(string(resume)) {
			return nil, nil, fault.ErrInvalidBookmark
		}
		if bytes.Compare(resume, []byte(startKey)) > 0 {
			startKey = string(resume)
		}
	}

	cursor := t.rangeCursor(startKey, endKey)
	defer cursor.Close()

	elements := make([]*ledger.KV, 0, initialPageCapacity)
	for int32(len(elements)) < pageSize && cursor.HasNext() {
		kv, err := cursor.Next()
		if nil != err {
			return nil, nil, err
		}
		elements = append(elements, kv)
	}

	metadata := &ledger.PageMetadata{
		FetchedRecordsCount: int32(len(elements)),
	}
	if cursor.HasNext() {
		kv, err := cursor.Next()
		if nil != err {
			return nil, nil, err
		}
		metadata.Bookmark = base58.Encode([]byte(kv.Key))
	}

	return &sliceCursor{elements: elements}, metadata, nil
}

// GetQueryResult - committed entries matching a selector
func (t *Transaction) GetQueryResult(selector *query.Selector) (ledger.StateIterator, error) {
	if t.done {
		return nil, fault.ErrTransactionAlreadyEnded
	}
	if nil == selector {
		return nil, fault.ErrInvalidQuery
	}
	return &selectorCursor{
		cursor:   t.rangeCursor("", ""),
		selector: selector,
	}, nil
}

// GetHistoryForKey - committed modifications of a key, oldest first
func (t *Transaction) GetHistoryForKey(key string) (ledger.HistoryIterator, error) {
	if t.done {
		return nil, fault.ErrTransactionAlreadyEnded
	}
	r := Pool.History.prefixRange(historyPrefix(key))
	return &historyCursor{
		key:    key,
		cursor: newRangeCursor(Pool.History, Pool.History.newIterator(t.database, r)),
	}, nil
}

// Commit - write all queued changes atomically and end the transaction
func (t *Transaction) Commit() error {
	if t.done {
		return fault.ErrTransactionAlreadyEnded
	}
	err := t.database.Write(t.batch, nil)
	t.end()
	return err
}

// Abort - discard all queued changes and end the transaction
//
// does nothing if the transaction has already ended
func (t *Transaction) Abort() {
	if t.done {
		return
	}
	t.end()
}

func (t *Transaction) end() {
	t.done = true
	t.batch.Reset()
	t.writeSet.Clear()
	poolData.transaction.Unlock()
	poolData.RUnlock()
}

// Begin - start a transaction behind the ledger interface
func Begin() (ledger.Transaction, error) {
	trx, err := NewTransaction()
	if nil != err {
		return nil, err
	}
	return trx, nil
}
