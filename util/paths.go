// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/kycledger/fault"
)

// Absolute - a relative name is taken to be inside directory
func Absolute(directory string, name string) string {
	if !filepath.IsAbs(name) {
		name = filepath.Join(directory, name)
	}
	return filepath.Clean(name)
}

// InDirectory - place a plain file name inside directory
//
// names containing a path separator are rejected
func InDirectory(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		return Absolute(directory, name), nil
	default:
		return "", fault.ErrNotPlainName
	}
}

// FileExists - true if anything exists at name
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
