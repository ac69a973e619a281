// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kycledger/command/kyc-cli/rpccalls"
	"github.com/bitmark-inc/kycledger/kyc"
)

// open a connection using the global options
func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

func checkAssetID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if "" == id {
		return "", ErrAssetIDIsRequired
	}
	return id, nil
}

// the single positional argument
func checkOneArgument(c *cli.Context) (string, error) {
	if 1 != c.NArg() {
		return "", ErrOneArgument
	}
	return c.Args().Get(0), nil
}

// build an asset from a JSON file, with any flags overriding its fields
func assetFromFlags(c *cli.Context, stdin io.Reader) (*kyc.Asset, error) {

	asset := &kyc.Asset{}

	if file := c.String("json"); "" != file {
		var r io.Reader = stdin
		if "-" != file {
			f, err := os.Open(file)
			if nil != err {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		if err := json.NewDecoder(r).Decode(asset); nil != err {
			return nil, err
		}
	}

	fields := []struct {
		flag  string
		field *string
	}{
		{"id", &asset.AssetID},
		{"firstname", &asset.Firstname},
		{"lastname", &asset.Lastname},
		{"address", &asset.Address},
		{"dob", &asset.DateOfBirth},
		{"id-number", &asset.IDNumber},
		{"gender", &asset.Gender},
		{"status", &asset.Status},
		{"owner", &asset.Owner},
		{"residence", &asset.ProofOfResidence},
		{"proof", &asset.ProofOfID},
	}
	for _, s := range fields {
		if c.IsSet(s.flag) {
			*s.field = c.String(s.flag)
		}
	}
	if c.IsSet("approvals") {
		asset.ApprovalCount = c.Int("approvals")
	}

	if "" == asset.AssetID {
		return nil, ErrAssetIDIsRequired
	}
	if "" == asset.IDNumber {
		return nil, ErrIDNumberIsRequired
	}
	return asset, nil
}
