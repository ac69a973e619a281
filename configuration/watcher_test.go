// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kycledger/configuration"
	"github.com/bitmark-inc/logger"
)

func setupLogger(t *testing.T, dir string) {
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

func TestWatcher(t *testing.T) {
	dir, err := ioutil.TempDir("", "watcher")
	require.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	setupLogger(t, dir)
	defer logger.Finalise()

	fileName := writeFile(t, dir, "return {}")

	w, err := configuration.NewWatcher(fileName, logger.New("test"))
	require.Nil(t, err, "wrong new watcher error")
	require.Nil(t, w.Start(), "wrong start error")
	defer w.Stop()

	// writes to other files in the directory are ignored
	err = ioutil.WriteFile(filepath.Join(dir, "other.conf"), []byte("x"), 0600)
	require.Nil(t, err, "write other error")

	select {
	case <-w.Changes():
		t.Fatal("unexpected change for another file")
	case <-time.After(200 * time.Millisecond):
	}

	err = ioutil.WriteFile(fileName, []byte("return { a = 1 }"), 0600)
	require.Nil(t, err, "rewrite error")

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change seen")
	}

	w.Stop()
	w.Stop()
}

func TestWatcherMissingFile(t *testing.T) {
	dir, _ := ioutil.TempDir("", "watcher")
	defer os.RemoveAll(dir)

	setupLogger(t, dir)
	defer logger.Finalise()

	_, err := configuration.NewWatcher(filepath.Join(dir, "missing.conf"), logger.New("test"))
	assert.NotNil(t, err, "missing file should fail")
}
