// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kycledger/counter"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/rpc/fixtures"
	"github.com/bitmark-inc/kycledger/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.New(nil)
	c.Acquire(10)
	c.Acquire(10)

	n := node.New(
		logger.New(fixtures.LogCategory),
		rate.NewLimiter(100, 10),
		time.Now().Add(-time.Minute),
		"1.0",
		c,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestNodeInfoRateLimited(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n := node.New(
		logger.New(fixtures.LogCategory),
		rate.NewLimiter(1, 0),
		time.Now(),
		"1.0",
		counter.New(nil),
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.ErrRateLimiting, err, "wrong error")
}
