// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the key-value access contract used by the asset store
//
// one Stub is one ledger transaction: reads see the writes already
// made in the same transaction, iterators see committed state only
package ledger

import (
	"time"

	"github.com/bitmark-inc/kycledger/query"
)

// KV - a single world state entry
type KV struct {
	Key   string
	Value []byte
}

// KeyModification - one historic write of a key
type KeyModification struct {
	TxID      string
	Timestamp time.Time
	Value     []byte
	IsDelete  bool
}

// PageMetadata - result of a paginated scan
type PageMetadata struct {
	FetchedRecordsCount int32
	Bookmark            string
}

// StateIterator - iterate world state entries
//
// Close must be called exactly once, further calls are harmless
type StateIterator interface {
	HasNext() bool
	Next() (*KV, error)
	Close() error
}

// HistoryIterator - iterate the modifications of a key
type HistoryIterator interface {
	HasNext() bool
	Next() (*KeyModification, error)
	Close() error
}

// Stub - access to the world state within a single transaction
type Stub interface {
	GetTxID() string
	GetTxTimestamp() time.Time

	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error

	// empty startKey begins after the composite key namespace,
	// empty endKey is unbounded
	GetStateByRange(startKey string, endKey string) (StateIterator, error)
	GetStateByRangeWithPagination(startKey string, endKey string, pageSize int32, bookmark string) (StateIterator, *PageMetadata, error)
	GetQueryResult(selector *query.Selector) (StateIterator, error)
	GetHistoryForKey(key string) (HistoryIterator, error)
}

// Transaction - a Stub that must be either committed or aborted
type Transaction interface {
	Stub
	Commit() error
	Abort()
}
