// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kycledger/aggregate"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/ledger/mocks"
)

// expect the iterator to yield the given entries then finish
func expectStates(it *mocks.MockStateIterator, entries []*ledger.KV) {
	calls := make([]*gomock.Call, 0, 2*len(entries)+1)
	for _, e := range entries {
		calls = append(calls,
			it.EXPECT().HasNext().Return(true),
			it.EXPECT().Next().Return(e, nil),
		)
	}
	calls = append(calls, it.EXPECT().HasNext().Return(false))
	gomock.InOrder(calls...)
}

func TestStates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	it := mocks.NewMockStateIterator(ctl)
	expectStates(it, []*ledger.KV{
		{Key: "asset1", Value: []byte(`{"assetID":"asset1"}`)},
		{Key: "asset2", Value: []byte(`{"assetID":"asset2"}`)},
	})
	it.EXPECT().Close().Return(nil).Times(1)

	results, err := aggregate.States(it)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 2, len(results), "wrong result count")
	assert.Equal(t, "asset1", results[0].Key, "wrong first key")
	assert.Equal(t, "asset2", results[1].Key, "wrong second key")
	assert.True(t, results[0].Record.Decoded(), "record should decode")

	buffer, err := json.Marshal(results)
	assert.Nil(t, err, "wrong marshal error")
	assert.Equal(t, `[{"Key":"asset1","Record":{"assetID":"asset1"}},{"Key":"asset2","Record":{"assetID":"asset2"}}]`, string(buffer), "wrong JSON")
}

// one unparseable entry among valid ones is kept as a raw string
func TestStatesMalformedEntry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	it := mocks.NewMockStateIterator(ctl)
	expectStates(it, []*ledger.KV{
		{Key: "asset1", Value: []byte(`{"assetID":"asset1"}`)},
		{Key: "broken", Value: []byte(`{"assetID":`)},
		{Key: "asset3", Value: []byte(`{"assetID":"asset3"}`)},
	})
	it.EXPECT().Close().Return(nil).Times(1)

	results, err := aggregate.States(it)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 3, len(results), "wrong result count")

	assert.False(t, results[1].Record.Decoded(), "broken record should not decode")
	assert.Equal(t, `{"assetID":`, results[1].Record.Raw(), "wrong raw value")

	buffer, _ := json.Marshal(results[1])
	assert.Equal(t, `{"Key":"broken","Record":"{\"assetID\":"}`, string(buffer), "wrong JSON")

	var target map[string]interface{}
	assert.Equal(t, fault.ErrDecodeFailed, results[1].Record.Unmarshal(&target), "wrong unmarshal error")
}

func TestStatesSkipsEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	it := mocks.NewMockStateIterator(ctl)
	expectStates(it, []*ledger.KV{
		{Key: "empty", Value: []byte{}},
		{Key: "asset1", Value: []byte(`{}`)},
	})
	it.EXPECT().Close().Return(nil).Times(1)

	results, err := aggregate.States(it)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 1, len(results), "wrong result count")
	assert.Equal(t, "asset1", results[0].Key, "wrong key")
}

func TestStatesEmptyIterator(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	it := mocks.NewMockStateIterator(ctl)
	expectStates(it, nil)
	it.EXPECT().Close().Return(nil).Times(1)

	results, err := aggregate.States(it)
	assert.Nil(t, err, "wrong error")
	assert.NotNil(t, results, "results should be an empty list")

	buffer, _ := json.Marshal(results)
	assert.Equal(t, "[]", string(buffer), "wrong JSON")
}

// the iterator is closed even when a step fails
func TestStatesCloseOnError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("ledger unavailable")

	it := mocks.NewMockStateIterator(ctl)
	gomock.InOrder(
		it.EXPECT().HasNext().Return(true),
		it.EXPECT().Next().Return(nil, failure),
		it.EXPECT().Close().Return(nil),
	)

	results, err := aggregate.States(it)
	assert.Equal(t, failure, err, "wrong error")
	assert.Nil(t, results, "results should be nil")
}

func TestStatesCloseError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("close failed")

	it := mocks.NewMockStateIterator(ctl)
	expectStates(it, nil)
	it.EXPECT().Close().Return(failure).Times(1)

	_, err := aggregate.States(it)
	assert.Equal(t, failure, err, "wrong error")
}

func TestHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	timestamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	it := mocks.NewMockHistoryIterator(ctl)
	gomock.InOrder(
		it.EXPECT().HasNext().Return(true),
		it.EXPECT().Next().Return(&ledger.KeyModification{TxID: "tx1", Timestamp: timestamp, Value: []byte(`{"status":"pending"}`)}, nil),
		it.EXPECT().HasNext().Return(true),
		it.EXPECT().Next().Return(&ledger.KeyModification{TxID: "tx2", Timestamp: timestamp, Value: []byte("garbage")}, nil),
		it.EXPECT().HasNext().Return(true),
		it.EXPECT().Next().Return(&ledger.KeyModification{TxID: "tx3", Timestamp: timestamp, IsDelete: true}, nil),
		it.EXPECT().HasNext().Return(false),
		it.EXPECT().Close().Return(nil),
	)

	results, err := aggregate.History(it)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 2, len(results), "wrong result count")
	assert.Equal(t, "tx1", results[0].TxId, "wrong first txid")
	assert.Equal(t, "garbage", results[1].Value.Raw(), "wrong raw value")

	buffer, _ := json.Marshal(results[0])
	assert.Equal(t, `{"TxId":"tx1","Timestamp":"2020-01-02T03:04:05Z","Value":{"status":"pending"}}`, string(buffer), "wrong JSON")
}

func TestValueRoundTrip(t *testing.T) {
	var v aggregate.Value
	assert.Nil(t, json.Unmarshal([]byte(`{"a":1}`), &v), "wrong unmarshal error")
	assert.True(t, v.Decoded(), "object should decode")

	assert.Nil(t, json.Unmarshal([]byte(`"raw text"`), &v), "wrong unmarshal error")
	assert.False(t, v.Decoded(), "string should be raw")
	assert.Equal(t, "raw text", v.Raw(), "wrong raw text")
}

func TestValueInvalidUTF8(t *testing.T) {
	stored := []byte("{\"firstname\":\"J\xffrgen\"}")

	v := aggregate.NewValue(stored)
	assert.False(t, v.Decoded(), "invalid UTF-8 should not decode")
	assert.Equal(t, string(stored), v.Raw(), "wrong raw text")

	buffer, err := json.Marshal(v)
	assert.Nil(t, err, "wrong marshal error")
	assert.True(t, utf8.Valid(buffer), "marshalled value is not UTF-8")
	assert.Equal(t, `"{\"firstname\":\"J\ufffdrgen\"}"`, string(buffer), "wrong marshalled value")
}
