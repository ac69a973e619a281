// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kycledger/aggregate"
	"github.com/bitmark-inc/kycledger/command/kyc-cli/rpccalls"
)

func runRange(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	results, err := client.GetRange(c.String("start"), c.String("end"))
	if nil != err {
		return err
	}

	return printJson(m.w, results)
}

func runPage(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	page, err := client.GetRangePage(c.String("start"), c.String("end"), int32(c.Int("size")), c.String("bookmark"))
	if nil != err {
		return err
	}

	return printJson(m.w, page)
}

func runQuery(c *cli.Context) error {
	return runSearch(c, (*rpccalls.Client).Query)
}

func runByOwner(c *cli.Context) error {
	return runSearch(c, (*rpccalls.Client).ByOwner)
}

func runByStatus(c *cli.Context) error {
	return runSearch(c, (*rpccalls.Client).ByStatus)
}

func runByIDNumber(c *cli.Context) error {
	return runSearch(c, (*rpccalls.Client).ByIDNumber)
}

// all searches take one positional argument and print the matches
func runSearch(c *cli.Context, search func(*rpccalls.Client, string) ([]aggregate.Result, error)) error {

	argument, err := checkOneArgument(c)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	results, err := search(client, argument)
	if nil != err {
		return err
	}

	return printJson(m.w, results)
}
