// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "kycd")
	require.Nil(t, err, "temp dir error")

	fileName := filepath.Join(dir, "kycd.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration error")
	return dir, fileName
}

func TestGetConfigurationSample(t *testing.T) {
	sample, err := ioutil.ReadFile("kycd.conf.sample")
	require.Nil(t, err, "read sample error")

	dir, fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "wrong configuration error")

	assert.Equal(t, dir+"/", options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", "kyc.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.ClientRPC.PrivateKey, "wrong key")
	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2150", "[::1]:2150"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, []string{"127.0.0.1:2160"}, options.Metrics.Listen, "wrong metrics listen")
	assert.Equal(t, float64(200), options.RateLimit.Rate, "wrong rate")
	assert.Equal(t, 100, options.RateLimit.Burst, "wrong burst")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "info", options.Logging.Levels["storage"], "wrong log level")
	assert.Equal(t, "", options.PidFile, "pid file should be unset")

	info, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database path is not a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = ".", pidfile = "kycd.pid" }`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "wrong configuration error")

	assert.Equal(t, filepath.Join(dir, "data", defaultDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "kycd.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, float64(defaultRate), options.RateLimit.Rate, "wrong rate")
	assert.Equal(t, defaultBurst, options.RateLimit.Burst, "wrong burst")
	assert.Equal(t, 0, len(options.Metrics.Listen), "metrics should be disabled")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []string{
		`return {}`,
		`return { data_directory = "~" }`,
		`return { data_directory = "/nonexistent/kycd/directory" }`,
		`return { data_directory = ".", database = { name = "sub/kyc.leveldb" } }`,
		`return { data_directory = ".", rate_limit = { rate = 0, burst = 1 } }`,
		`return { data_directory = ".", rate_limit = { rate = 10, burst = 0 } }`,
	}

	for i, text := range items {
		dir, fileName := writeConfiguration(t, text)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: expected error for: %s", i, text)
		os.RemoveAll(dir)
	}
}
