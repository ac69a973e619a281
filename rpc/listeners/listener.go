// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/logger"
)

const minConnectionCount = 1

// Listener - a configured server that can be started and stopped
type Listener interface {
	Serve() error
	Stop()
}

// split each listen address into network type and host:port
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("empty listen address")
			return nil, nil, fault.ErrInvalidIPAddress
		}

		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen address: %q  error: %s", listen, fault.ErrInvalidIPAddress)
			return nil, nil, fault.ErrInvalidIPAddress
		}
		addresses[i] = net.JoinHostPort(host, port)
	}

	return networks, addresses, nil
}
