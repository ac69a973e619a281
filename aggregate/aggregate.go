// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aggregate - drain ledger iterators into ordered result lists
//
// a value that cannot be decoded is kept as its raw string so that a
// single bad record never aborts a scan
package aggregate

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
)

// Value - either a decoded JSON record or the raw stored text
type Value struct {
	decoded json.RawMessage
	raw     string
}

// Result - a world state entry
type Result struct {
	Key    string `json:"Key"`
	Record Value  `json:"Record"`
}

// Modification - a history entry
type Modification struct {
	TxId      string    `json:"TxId"`
	Timestamp time.Time `json:"Timestamp"`
	Value     Value     `json:"Value"`
}

// NewValue - decode stored bytes, falling back to the raw string
//
// invalid UTF-8 is never embedded, the raw form replaces it with U+FFFD
// when marshalled
func NewValue(buffer []byte) Value {
	if utf8.Valid(buffer) && json.Valid(buffer) {
		decoded := make(json.RawMessage, len(buffer))
		copy(decoded, buffer)
		return Value{decoded: decoded}
	}
	return Value{raw: string(buffer)}
}

// Decoded - true if the value was valid JSON
func (v Value) Decoded() bool {
	return nil != v.decoded
}

// Raw - the undecoded text, empty for a decoded value
func (v Value) Raw() string {
	return v.raw
}

// Unmarshal - decode the record into a structure
func (v Value) Unmarshal(target interface{}) error {
	if !v.Decoded() {
		return fault.ErrDecodeFailed
	}
	return json.Unmarshal(v.decoded, target)
}

// MarshalJSON - decoded records are embedded, raw text becomes a string
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Decoded() {
		return v.decoded, nil
	}
	return json.Marshal(v.raw)
}

// UnmarshalJSON - accept any JSON, a string becomes raw text
func (v *Value) UnmarshalJSON(buffer []byte) error {
	var s string
	if err := json.Unmarshal(buffer, &s); nil == err {
		*v = Value{raw: s}
		return nil
	}
	*v = NewValue(buffer)
	return nil
}

// States - collect every non-empty entry of a state iterator
func States(iterator ledger.StateIterator) (results []Result, err error) {
	defer closeIterator(iterator, &err)

	results = make([]Result, 0)
	for iterator.HasNext() {
		kv, err := iterator.Next()
		if nil != err {
			return nil, err
		}
		if nil == kv || 0 == len(kv.Value) {
			continue
		}
		results = append(results, Result{
			Key:    kv.Key,
			Record: NewValue(kv.Value),
		})
	}
	return results, nil
}

// History - collect every non-empty entry of a history iterator
func History(iterator ledger.HistoryIterator) (results []Modification, err error) {
	defer closeIterator(iterator, &err)

	results = make([]Modification, 0)
	for iterator.HasNext() {
		m, err := iterator.Next()
		if nil != err {
			return nil, err
		}
		if nil == m || 0 == len(m.Value) {
			continue
		}
		results = append(results, Modification{
			TxId:      m.TxID,
			Timestamp: m.Timestamp,
			Value:     NewValue(m.Value),
		})
	}
	return results, nil
}

type closer interface {
	Close() error
}

// the close error is only reported if nothing else failed
func closeIterator(c closer, err *error) {
	closeErr := c.Close()
	if nil == *err && nil != closeErr {
		*err = closeErr
	}
}
