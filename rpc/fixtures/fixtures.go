// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures holds shared setup for the rpc package tests
package fixtures

import (
	"os"
	"sync"

	"github.com/bitmark-inc/kycledger/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

const (
	// LogCategory - logger tag used by tests
	LogCategory = "testing"

	dir = "testing"
)

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
	removeTestFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	_ = os.RemoveAll(dir)
}

var (
	once    sync.Once
	testCer string
	testKey string
)

// KeyPair - a self-signed certificate for localhost, shared by all tests
func KeyPair() (string, string) {
	once.Do(func() {
		c, k, err := certificate.Generate("testing", []string{"localhost", "127.0.0.1"})
		if nil != err {
			panic(err)
		}
		testCer = string(c)
		testKey = string(k)
	})
	return testCer, testKey
}
