// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query - typed selector predicates over JSON records
//
// document form:
//
//	{"selector": {"owner": "x", "approvalCount": {"$gte": 2}, "status": {"$in": ["a", "b"]}}}
//
// all field conditions must hold for a record to match; only fields
// in the caller's allow-list and the operators below are accepted
package query

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/kycledger/fault"
)

// Operator - comparison applied to a field
type Operator string

// supported operators
const (
	Eq  Operator = "$eq"
	Ne  Operator = "$ne"
	Gt  Operator = "$gt"
	Gte Operator = "$gte"
	Lt  Operator = "$lt"
	Lte Operator = "$lte"
	In  Operator = "$in"
)

var operators = map[Operator]struct{}{
	Eq: {}, Ne: {}, Gt: {}, Gte: {}, Lt: {}, Lte: {}, In: {},
}

// Fields - allow-list of queryable field names
type Fields []string

func (f Fields) has(name string) bool {
	for _, s := range f {
		if s == name {
			return true
		}
	}
	return false
}

// Selector - conjunction of field conditions
type Selector struct {
	conditions map[string]map[Operator]interface{}
}

type document struct {
	Selector map[string]json.RawMessage `json:"selector"`
}

// Equal - selector matching a single field by equality
func Equal(field string, value string) *Selector {
	return &Selector{
		conditions: map[string]map[Operator]interface{}{
			field: {Eq: value},
		},
	}
}

// Parse - decode and validate a selector document
func Parse(buffer []byte, allowed Fields) (*Selector, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(buffer))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); nil != err {
		return nil, fault.ErrInvalidQuery
	}
	if dec.More() || 0 == len(doc.Selector) {
		return nil, fault.ErrInvalidQuery
	}

	s := &Selector{
		conditions: make(map[string]map[Operator]interface{}, len(doc.Selector)),
	}
	for field, raw := range doc.Selector {
		if !allowed.has(field) {
			return nil, fault.ErrInvalidQuery
		}
		c, err := parseCondition(raw)
		if nil != err {
			return nil, err
		}
		s.conditions[field] = c
	}
	return s, nil
}

// a bare value is shorthand for {"$eq": value}
func parseCondition(raw json.RawMessage) (map[Operator]interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && '{' != raw[0] {
		var v interface{}
		if err := json.Unmarshal(raw, &v); nil != err || !isScalar(v) {
			return nil, fault.ErrInvalidQuery
		}
		return map[Operator]interface{}{Eq: v}, nil
	}

	var ops map[Operator]interface{}
	if err := json.Unmarshal(raw, &ops); nil != err || 0 == len(ops) {
		return nil, fault.ErrInvalidQuery
	}
	for op, v := range ops {
		if _, ok := operators[op]; !ok {
			return nil, fault.ErrInvalidQuery
		}
		if In == op {
			list, ok := v.([]interface{})
			if !ok || 0 == len(list) {
				return nil, fault.ErrInvalidQuery
			}
			for _, item := range list {
				if !isScalar(item) {
					return nil, fault.ErrInvalidQuery
				}
			}
		} else if !isScalar(v) {
			return nil, fault.ErrInvalidQuery
		}
	}
	return ops, nil
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case string, float64:
		return true
	default:
		return false
	}
}

// MarshalJSON - canonical document form
func (s *Selector) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Selector map[string]map[Operator]interface{} `json:"selector"`
	}{
		Selector: s.conditions,
	})
}

// String - canonical document as text, for logging
func (s *Selector) String() string {
	buffer, err := s.MarshalJSON()
	if nil != err {
		return "<invalid selector>"
	}
	return string(buffer)
}

// Match - true if the JSON object satisfies every condition
//
// values that are not JSON objects never match
func (s *Selector) Match(buffer []byte) bool {
	var record map[string]interface{}
	if err := json.Unmarshal(buffer, &record); nil != err || nil == record {
		return false
	}

	for field, ops := range s.conditions {
		actual, ok := record[field]
		if !ok {
			return false
		}
		for op, expected := range ops {
			if !apply(op, actual, expected) {
				return false
			}
		}
	}
	return true
}

func apply(op Operator, actual interface{}, expected interface{}) bool {
	if In == op {
		list, _ := expected.([]interface{})
		for _, item := range list {
			if n, ok := compare(actual, item); ok && 0 == n {
				return true
			}
		}
		return false
	}

	n, ok := compare(actual, expected)
	switch op {
	case Eq:
		return ok && 0 == n
	case Ne:
		return !ok || 0 != n
	case Gt:
		return ok && n > 0
	case Gte:
		return ok && n >= 0
	case Lt:
		return ok && n < 0
	case Lte:
		return ok && n <= 0
	}
	return false
}

// only values of the same kind are ordered
func compare(a interface{}, b interface{}) (int, bool) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case float64:
		y, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
