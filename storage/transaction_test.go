// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/query"
	"github.com/bitmark-inc/kycledger/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

var testElements = []stringElement{
	{"key-one", `{"owner":"alice","status":"pending"}`},
	{"key-two", `{"owner":"bob","status":"approved"}`},
	{"key-three", `{"owner":"alice","status":"approved"}`},
	{"key-four", "not json"},
	{"key-five", `{"owner":"carol","status":"rejected"}`},
	{"\x00kyc~name\x00123\x00key-one\x00", "\x00"},
}

// this is the expected order of the non-composite keys
var expectedKeys = []string{
	"key-five",
	"key-four",
	"key-one",
	"key-three",
	"key-two",
}

func loadElements(t *testing.T) {
	trx, err := storage.NewTransaction()
	require.Nil(t, err, "wrong transaction error")
	for _, e := range testElements {
		require.Nil(t, trx.PutState(e.key, []byte(e.value)), "wrong put error")
	}
	require.Nil(t, trx.Commit(), "wrong commit error")
}

func drain(t *testing.T, it ledger.StateIterator) []string {
	keys := []string{}
	for it.HasNext() {
		kv, err := it.Next()
		require.Nil(t, err, "wrong next error")
		keys = append(keys, kv.Key)
	}
	assert.Nil(t, it.Close(), "wrong close error")
	return keys
}

func TestReadOwnWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewTransaction()
	value, err := trx.GetState("key-one")
	assert.Nil(t, err, "wrong get error")
	assert.Nil(t, value, "absent key should be nil")

	assert.Nil(t, trx.PutState("key-one", []byte("data-one")), "wrong put error")
	value, _ = trx.GetState("key-one")
	assert.Equal(t, []byte("data-one"), value, "should see own write")

	// iterators only see committed data
	it, _ := trx.GetStateByRange("", "")
	assert.Equal(t, []string{}, drain(t, it), "uncommitted write should not be scanned")

	assert.Nil(t, trx.Commit(), "wrong commit error")

	trx, _ = storage.NewTransaction()
	defer trx.Abort()
	value, _ = trx.GetState("key-one")
	assert.Equal(t, []byte("data-one"), value, "committed write missing")
}

func TestAbortDiscardsWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewTransaction()
	assert.Nil(t, trx.PutState("key-one", []byte("data-one")), "wrong put error")
	trx.Abort()
	trx.Abort() // harmless

	trx, _ = storage.NewTransaction()
	defer trx.Abort()
	value, err := trx.GetState("key-one")
	assert.Nil(t, err, "wrong get error")
	assert.Nil(t, value, "aborted write should be gone")
}

func TestEndedTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewTransaction()
	assert.NotEqual(t, "", trx.GetTxID(), "missing transaction id")
	assert.False(t, trx.GetTxTimestamp().IsZero(), "missing timestamp")
	assert.Nil(t, trx.Commit(), "wrong commit error")

	assert.Equal(t, fault.ErrTransactionAlreadyEnded, trx.Commit(), "wrong second commit error")
	assert.Equal(t, fault.ErrTransactionAlreadyEnded, trx.PutState("k", []byte("v")), "wrong put error")
	_, err := trx.GetState("k")
	assert.Equal(t, fault.ErrTransactionAlreadyEnded, err, "wrong get error")
	_, err = trx.GetStateByRange("", "")
	assert.Equal(t, fault.ErrTransactionAlreadyEnded, err, "wrong range error")
}

func TestPutEmptyKey(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewTransaction()
	defer trx.Abort()
	assert.Equal(t, fault.ErrInvalidKey, trx.PutState("", []byte("v")), "wrong error")
}

func TestTransactionIDsDiffer(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewTransaction()
	first := trx.GetTxID()
	trx.Abort()

	trx, _ = storage.NewTransaction()
	second := trx.GetTxID()
	trx.Abort()

	assert.NotEqual(t, first, second, "transaction ids should be unique")
}

func TestRange(t *testing.T) {
	setup(t)
	defer teardown(t)
	loadElements(t)

	trx, _ := storage.NewTransaction()
	defer trx.Abort()

	it, err := trx.GetStateByRange("", "")
	assert.Nil(t, err, "wrong range error")
	assert.Equal(t, expectedKeys, drain(t, it), "composite keys must be excluded")

	it, _ = trx.GetStateByRange("key-one", "key-two")
	assert.Equal(t, []string{"key-one", "key-three"}, drain(t, it), "wrong bounded range")

	it, _ = trx.GetStateByRange("key-three", "")
	assert.Equal(t, []string{"key-three", "key-two"}, drain(t, it), "wrong open range")

	it, _ = trx.GetStateByRange("\x00kyc~name\x00", "\x00kyc~name\x00\U0010FFFF")
	assert.Equal(t, []string{"\x00kyc~name\x00123\x00key-one\x00"}, drain(t, it), "wrong index range")
}

func TestCloseIsIdempotent(t *testing.T) {
	setup(t)
	defer teardown(t)
	loadElements(t)

	trx, _ := storage.NewTransaction()
	defer trx.Abort()

	it, _ := trx.GetStateByRange("", "")
	assert.True(t, it.HasNext(), "should have elements")
	assert.Nil(t, it.Close(), "wrong close error")
	assert.Nil(t, it.Close(), "wrong second close error")
	assert.False(t, it.HasNext(), "closed iterator has no elements")

	_, err := it.Next()
	assert.Equal(t, fault.ErrNoMoreResults, err, "wrong next error")
}

func TestPagination(t *testing.T) {
	setup(t)
	defer teardown(t)
	loadElements(t)

	trx, _ := storage.NewTransaction()
	defer trx.Abort()

	pages := [][]string{}
	bookmark := ""
	for i := 0; i < 10; i += 1 {
		it, metadata, err := trx.GetStateByRangeWithPagination("", "", 2, bookmark)
		require.Nil(t, err, "wrong pagination error")
		keys := drain(t, it)
		assert.Equal(t, int32(len(keys)), metadata.FetchedRecordsCount, "wrong fetched count")
		pages = append(pages, keys)
		bookmark = metadata.Bookmark
		if "" == bookmark {
			break
		}
	}

	assert.Equal(t, [][]string{
		{"key-five", "key-four"},
		{"key-one", "key-three"},
		{"key-two"},
	}, pages, "wrong pages")
}

func TestPaginationBounds(t *testing.T) {
	setup(t)
	defer teardown(t)
	loadElements(t)

	trx, _ := storage.NewTransaction()
	defer trx.Abort()

	it, metadata, err := trx.GetStateByRangeWithPagination("key-one", "key-two", 5, "")
	assert.Nil(t, err, "wrong pagination error")
	assert.Equal(t, []string{"key-one", "key-three"}, drain(t, it), "wrong page")
	assert.Equal(t, "", metadata.Bookmark, "exhausted range should have no bookmark")

	// a page size far beyond the data returns what exists
	it, metadata, err = trx.GetStateByRangeWithPagination("", "", math.MaxInt32, "")
	assert.Nil(t, err, "wrong huge page error")
	assert.Equal(t, []string{"key-five", "key-four", "key-one", "key-three", "key-two"}, drain(t, it), "wrong huge page")
	assert.Equal(t, int32(5), metadata.FetchedRecordsCount, "wrong huge page count")
	assert.Equal(t, "", metadata.Bookmark, "huge page should have no bookmark")

	_, _, err = trx.GetStateByRangeWithPagination("", "", 0, "")
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong page size error")

	_, _, err = trx.GetStateByRangeWithPagination("", "", 2, "0OIl")
	assert.Equal(t, fault.ErrInvalidBookmark, err, "wrong bookmark error")
}

func TestQueryResult(t *testing.T) {
	setup(t)
	defer teardown(t)
	loadElements(t)

	trx, _ := storage.NewTransaction()
	defer trx.Abort()

	it, err := trx.GetQueryResult(query.Equal("owner", "alice"))
	assert.Nil(t, err, "wrong query error")
	assert.Equal(t, []string{"key-one", "key-three"}, drain(t, it), "wrong owner matches")

	it, _ = trx.GetQueryResult(query.Equal("status", "approved"))
	assert.Equal(t, []string{"key-three", "key-two"}, drain(t, it), "wrong status matches")

	it, _ = trx.GetQueryResult(query.Equal("status", "unknown"))
	assert.Equal(t, []string{}, drain(t, it), "should not match")

	_, err = trx.GetQueryResult(nil)
	assert.Equal(t, fault.ErrInvalidQuery, err, "wrong nil selector error")
}

func TestHistory(t *testing.T) {
	setup(t)
	defer teardown(t)

	txIDs := []string{}
	for _, value := range []string{"v1", "v2"} {
		trx, _ := storage.NewTransaction()
		txIDs = append(txIDs, trx.GetTxID())
		assert.Nil(t, trx.PutState("a", []byte(value)), "wrong put error")
		assert.Nil(t, trx.PutState("ab", []byte("other-"+value)), "wrong put error")
		assert.Nil(t, trx.PutState("\x00idx\x00a\x00", []byte{0}), "wrong put error")
		assert.Nil(t, trx.Commit(), "wrong commit error")
	}

	trx, _ := storage.NewTransaction()
	defer trx.Abort()

	it, err := trx.GetHistoryForKey("a")
	assert.Nil(t, err, "wrong history error")

	values := []string{}
	ids := []string{}
	for it.HasNext() {
		m, err := it.Next()
		require.Nil(t, err, "wrong next error")
		values = append(values, string(m.Value))
		ids = append(ids, m.TxID)
		assert.False(t, m.Timestamp.IsZero(), "missing timestamp")
	}
	assert.Nil(t, it.Close(), "wrong close error")

	assert.Equal(t, []string{"v1", "v2"}, values, "wrong history values")
	assert.Equal(t, txIDs, ids, "wrong history transaction ids")

	it, _ = trx.GetHistoryForKey("\x00idx\x00a\x00")
	assert.False(t, it.HasNext(), "composite keys have no history")
	_ = it.Close()
}
