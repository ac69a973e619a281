// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kycledger/counter"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/rpc/assets"
	"github.com/bitmark-inc/kycledger/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all services registered
//
// all services share one limiter so a configuration reload
// changes the rate everywhere
func Create(log *logger.L, version string, limiter *rate.Limiter, rpcCount *counter.Counter, begin func() (ledger.Transaction, error)) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, limiter, begin))
	_ = server.Register(node.New(log, limiter, start, version, rpcCount))

	return server
}
