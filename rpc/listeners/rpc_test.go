// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kycledger/counter"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/rpc/certificate"
	"github.com/bitmark-inc/kycledger/rpc/fixtures"
	"github.com/bitmark-inc/kycledger/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.New(nil)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Error("register with error: ", err)
		t.FailNow()
	}

	cer, key := fixtures.KeyPair()
	tlsCertificate, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong certificate")

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		count,
		s,
		tlsCertificate,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	if err != nil {
		t.Error("dial with error: ", err)
		t.FailNow()
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2150"},
	}

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		counter.New(nil),
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		counter.New(nil),
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	for _, listen := range []string{"", "localhost:2150", "1.2.3:2150", "127.0.0.1"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 1,
			Listen:             []string{listen},
		}

		_, err := listeners.NewRPC(
			&con,
			logger.New(fixtures.LogCategory),
			counter.New(nil),
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "wrong error for: %q", listen)
	}
}

func TestRpcListenerAcceptsWildcard(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2150", "[::1]:2151"},
	}

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		counter.New(nil),
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Nil(t, err, "wrong error")
	assert.NotNil(t, l, "missing listener")
}
