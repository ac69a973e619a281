// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	httpLogName      = "metrics_http"
	readWriteTimeout = 10 * time.Second
)

// HTTPConfiguration - configuration file data for the metrics endpoint
type HTTPConfiguration struct {
	Listen []string `gluamapper:"listen" json:"listen"`
	Allow  []string `gluamapper:"allow" json:"allow"`
}

type httpListener struct {
	sync.Mutex
	log       *logger.L
	networks  []string
	addresses []string
	handler   http.Handler
	servers   []*http.Server
}

// NewHTTP - plain HTTP serving handler at path, restricted to the allowed networks
//
// returns nil when no listen address is configured
func NewHTTP(
	configuration *HTTPConfiguration,
	log *logger.L,
	path string,
	handler http.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpLogName)
		return nil, nil
	}

	networks, addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	allow := make([]*net.IPNet, 0, len(configuration.Allow))
	for _, ip := range configuration.Allow {
		_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
		if nil != err {
			log.Errorf("invalid %s allow: %q  error: %s", httpLogName, ip, err)
			return nil, err
		}
		allow = append(allow, cidr)
	}

	mux := http.NewServeMux()
	mux.Handle(path, restrict(allow, handler))

	return &httpListener{
		log:       log,
		networks:  networks,
		addresses: addresses,
		handler:   mux,
	}, nil
}

// Serve - open all listeners and serve in the background
func (h *httpListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpLogName, listen)

		ln, err := net.Listen(h.networks[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpLogName, err)
			return err
		}

		s := &http.Server{
			Handler:        h.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		go func() {
			err := s.Serve(ln)
			h.log.Infof("%s terminated: %s", httpLogName, err)
		}()
	}
	return nil
}

// Stop - close all servers
func (h *httpListener) Stop() {
	h.Lock()
	defer h.Unlock()

	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
}

// reject requests from outside the allowed networks, an empty list allows all
func restrict(allow []*net.IPNet, handler http.Handler) http.Handler {
	if 0 == len(allow) {
		return handler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if nil == err {
			if ip := net.ParseIP(host); nil != ip {
				for _, cidr := range allow {
					if cidr.Contains(ip) {
						handler.ServeHTTP(w, r)
						return
					}
				}
			}
		}
		http.Error(w, "forbidden", http.StatusForbidden)
	})
}
