// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/kycledger/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append the Varint64 form of value to buffer
//
// the first eight bytes carry seven bits each with the top bit set
// when more follow, a ninth byte carries the remaining eight bits
func AppendVarint64(buffer []byte, value uint64) []byte {
	for n := 1; n < Varint64MaximumBytes; n += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// ReadVarint64 - decode a Varint64 from the front of buffer
//
// returns the value and the bytes that follow it
func ReadVarint64(buffer []byte) (uint64, []byte, error) {
	value := uint64(0)
	shift := uint(0)

	for i, b := range buffer {
		if Varint64MaximumBytes-1 == i {
			return value | uint64(b)<<shift, buffer[i+1:], nil
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, buffer[i+1:], nil
		}
		shift += 7
	}
	return 0, nil, fault.ErrTruncatedData
}
