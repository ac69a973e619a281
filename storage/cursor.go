// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/query"
)

// rangeCursor - stream a pool range as world state entries
type rangeCursor struct {
	pool    *PoolHandle
	iter    iterator.Iterator
	fetched bool // iter is positioned on an unread element
	valid   bool
	failed  bool // iterator error already returned
	closed  bool
}

func newRangeCursor(pool *PoolHandle, iter iterator.Iterator) *rangeCursor {
	return &rangeCursor{
		pool: pool,
		iter: iter,
	}
}

// HasNext - true if Next will return an element or an error
func (c *rangeCursor) HasNext() bool {
	if c.closed {
		return false
	}
	if !c.fetched {
		c.valid = c.iter.Next()
		c.fetched = true
	}
	return c.valid || (!c.failed && nil != c.iter.Error())
}

// Next - the next element
func (c *rangeCursor) Next() (*ledger.KV, error) {
	if !c.HasNext() {
		return nil, fault.ErrNoMoreResults
	}
	if !c.valid {
		c.failed = true
		return nil, c.iter.Error()
	}
	c.fetched = false

	e := c.pool.element(c.iter)
	return &ledger.KV{
		Key:   string(e.Key),
		Value: e.Value,
	}, nil
}

// Close - release the iterator, repeated calls do nothing
func (c *rangeCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.iter.Release()
	return c.iter.Error()
}

// selectorCursor - only the entries matching a selector
type selectorCursor struct {
	cursor   *rangeCursor
	selector *query.Selector
	pending  *ledger.KV
	err      error
}

func (c *selectorCursor) HasNext() bool {
	if nil != c.pending || nil != c.err {
		return true
	}
	for c.cursor.HasNext() {
		kv, err := c.cursor.Next()
		if nil != err {
			c.err = err
			return true
		}
		if c.selector.Match(kv.Value) {
			c.pending = kv
			return true
		}
	}
	return false
}

func (c *selectorCursor) Next() (*ledger.KV, error) {
	if !c.HasNext() {
		return nil, fault.ErrNoMoreResults
	}
	if nil != c.err {
		err := c.err
		c.err = nil
		return nil, err
	}
	kv := c.pending
	c.pending = nil
	return kv, nil
}

func (c *selectorCursor) Close() error {
	return c.cursor.Close()
}

// sliceCursor - a page already read from the database
type sliceCursor struct {
	elements []*ledger.KV
}

func (c *sliceCursor) HasNext() bool {
	return len(c.elements) > 0
}

func (c *sliceCursor) Next() (*ledger.KV, error) {
	if 0 == len(c.elements) {
		return nil, fault.ErrNoMoreResults
	}
	kv := c.elements[0]
	c.elements = c.elements[1:]
	return kv, nil
}

func (c *sliceCursor) Close() error {
	c.elements = nil
	return nil
}
