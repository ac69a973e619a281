// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kycledger/configuration"
	"github.com/bitmark-inc/kycledger/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// reloader - reapply the rate limit whenever the configuration file changes
//
// only the rate limit is applied, other changes need a restart
type reloader struct {
	log               *logger.L
	configurationFile string
	watcher           *configuration.Watcher
	limiter           *rate.Limiter
}

func (r *reloader) Run(shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-r.watcher.Changes():
			options, err := getConfiguration(r.configurationFile)
			if nil != err {
				r.log.Errorf("reload configuration from: %q  error: %s", r.configurationFile, err)
				continue
			}
			ratelimit.Update(r.limiter, options.RateLimit)
			r.log.Infof("rate limit: %g/s  burst: %d", options.RateLimit.Rate, options.RateLimit.Burst)
		}
	}
}
