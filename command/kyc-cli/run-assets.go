// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

type txResult struct {
	TxID string `json:"txId"`
}

func runCreate(c *cli.Context) error {

	asset, err := assetFromFlags(c, os.Stdin)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %s  id number: %s\n", asset.AssetID, asset.IDNumber)
	}

	txID, err := client.CreateAsset(asset)
	if nil != err {
		return err
	}

	return printJson(m.w, txResult{TxID: txID})
}

func runRead(c *cli.Context) error {

	id, err := checkAssetID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	record, err := client.ReadAsset(id)
	if nil != err {
		return err
	}

	return printJson(m.w, record)
}

func runUpdate(c *cli.Context) error {

	id, err := checkAssetID(c.String("id"))
	if nil != err {
		return err
	}
	status := c.String("status")
	if "" == status {
		return ErrStatusIsRequired
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	txID, err := client.UpdateAsset(id, status)
	if nil != err {
		return err
	}

	return printJson(m.w, txResult{TxID: txID})
}

func runTransfer(c *cli.Context) error {

	id, err := checkAssetID(c.String("id"))
	if nil != err {
		return err
	}
	owner := c.String("owner")
	if "" == owner {
		return ErrOwnerIsRequired
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	txID, err := client.TransferAsset(id, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, txResult{TxID: txID})
}

func runExists(c *cli.Context) error {

	id, err := checkAssetID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.AssetExists(id)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]bool{"exists": exists})
}

func runHistory(c *cli.Context) error {

	id, err := checkAssetID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	history, err := client.History(id)
	if nil != err {
		return err
	}

	return printJson(m.w, history)
}

func runInitLedger(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	txID, err := client.InitLedger()
	if nil != err {
		return err
	}

	return printJson(m.w, txResult{TxID: txID})
}

func runInfo(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}
