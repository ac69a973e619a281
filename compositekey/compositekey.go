// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - derive ordered index keys from field values
//
// key layout:
//
//	0x00 ++ object type ++ 0x00 ++ attribute ++ 0x00 ++ attribute ++ 0x00 ...
//
// since no component may contain 0x00 the keys sort first by object
// type, then by the first attribute, then the second and so on
package compositekey

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/kycledger/fault"
)

const (
	// Namespace - first byte of every composite key
	Namespace = "\x00"

	delimiter      = "\x00"
	maxUnicodeRune = utf8.MaxRune // U+10FFFF, sorts after any valid component
)

// Create - build a composite key from an object type and attributes
func Create(objectType string, attributes []string) (string, error) {
	if err := validate(objectType); nil != err {
		return "", err
	}

	var b strings.Builder
	b.WriteString(Namespace)
	b.WriteString(objectType)
	b.WriteString(delimiter)
	for _, a := range attributes {
		if err := validate(a); nil != err {
			return "", err
		}
		b.WriteString(a)
		b.WriteString(delimiter)
	}
	return b.String(), nil
}

// Split - recover the object type and attributes from a composite key
func Split(key string) (string, []string, error) {
	if !IsComposite(key) {
		return "", nil, fault.ErrInvalidCompositeKey
	}
	body := key[len(Namespace):]
	if !strings.HasSuffix(body, delimiter) {
		return "", nil, fault.ErrInvalidCompositeKey
	}

	components := strings.Split(body[:len(body)-len(delimiter)], delimiter)
	return components[0], components[1:], nil
}

// PartialRange - start and end keys covering every composite key
// that begins with the given object type and attributes
func PartialRange(objectType string, attributes []string) (string, string, error) {
	start, err := Create(objectType, attributes)
	if nil != err {
		return "", "", err
	}
	return start, start + string(maxUnicodeRune), nil
}

// IsComposite - true if the key is in the composite key namespace
func IsComposite(key string) bool {
	return strings.HasPrefix(key, Namespace)
}

func validate(component string) error {
	if !utf8.ValidString(component) {
		return fault.ErrInvalidCompositeKey
	}
	for _, r := range component {
		if 0 == r || maxUnicodeRune == r {
			return fault.ErrInvalidCompositeKey
		}
	}
	return nil
}
