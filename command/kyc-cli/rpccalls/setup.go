// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a kycd
//
// the server certificate is self-signed so it is not verified unless
// a SHA3-256 fingerprint is given, in which case it must match
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != fingerprint {
		expected, err := hex.DecodeString(strings.TrimSpace(fingerprint))
		if nil != err || 32 != len(expected) {
			return nil, fault.ErrInvalidFingerprint
		}
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.ErrCertificateMismatch
			}
			actual := certificate.Fingerprint(rawCerts[0])
			if !bytes.Equal(actual[:], expected) {
				return fault.ErrCertificateMismatch
			}
			return nil
		}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the kycd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
