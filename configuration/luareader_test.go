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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kycledger/configuration"
	"github.com/bitmark-inc/kycledger/fault"
)

type limits struct {
	Rate  float64 `gluamapper:"rate"`
	Burst int     `gluamapper:"burst"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Listen        []string          `gluamapper:"listen"`
	Limits        limits            `gluamapper:"rate_limit"`
	Levels        map[string]string `gluamapper:"levels"`
}

func writeFile(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "test.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write file error")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.listen = { "127.0.0.1:2150", "[::1]:2150" }
M.rate_limit = { rate = 20.5, burst = 4 }
M.levels = { main = "info", DEFAULT = ENV_LEVEL }
return M
`)

	c := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &c, map[string]string{"ENV_LEVEL": "warn"})
	assert.Nil(t, err, "wrong parse error")

	assert.Equal(t, dir+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, []string{"127.0.0.1:2150", "[::1]:2150"}, c.Listen, "wrong listen")
	assert.Equal(t, limits{Rate: 20.5, Burst: 4}, c.Limits, "wrong limits")
	assert.Equal(t, map[string]string{"main": "info", "DEFAULT": "warn"}, c.Levels, "wrong levels")
}

func TestParseConfigurationNotTable(t *testing.T) {
	dir, _ := ioutil.TempDir("", "configuration")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, `return "hello"`)

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "wrong error")
}

func TestParseConfigurationSyntaxError(t *testing.T) {
	dir, _ := ioutil.TempDir("", "configuration")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, `return {`)

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.NotNil(t, err, "syntax error should fail")
}

func TestParseConfigurationNotStruct(t *testing.T) {
	c := testConfiguration{}
	m := map[string]string{}

	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", c, nil), "wrong value error")
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", &m, nil), "wrong map error")
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", nil, nil), "wrong nil error")
}
