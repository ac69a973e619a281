// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect     string
	fingerprint string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	err := newApp().Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "kyc-cli"
	app.Usage = "client for the kycd asset ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2150",
			EnvVar: "KYC_CONNECT",
			Usage:  " kycd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			EnvVar: "KYC_FINGERPRINT",
			Usage:  " expected server certificate SHA3-256 `HEX`",
		},
	}

	assetFlags := []cli.Flag{
		cli.StringFlag{Name: "id, i", Usage: "*asset `ID`"},
		cli.StringFlag{Name: "firstname", Usage: " first `NAME`"},
		cli.StringFlag{Name: "lastname", Usage: " last `NAME`"},
		cli.StringFlag{Name: "address", Usage: " postal `ADDRESS`"},
		cli.StringFlag{Name: "dob", Usage: " date of birth `DATE`"},
		cli.StringFlag{Name: "id-number, n", Usage: "*identity document `NUMBER`"},
		cli.StringFlag{Name: "gender", Usage: " `GENDER`"},
		cli.StringFlag{Name: "status, s", Usage: " initial `STATUS`"},
		cli.IntFlag{Name: "approvals", Usage: " approval `COUNT`"},
		cli.StringFlag{Name: "owner, o", Usage: " `OWNER`"},
		cli.StringFlag{Name: "residence", Usage: " proof of residence `REFERENCE`"},
		cli.StringFlag{Name: "proof", Usage: " proof of identity `REFERENCE`"},
		cli.StringFlag{Name: "json, j", Usage: " read the whole asset from `FILE` (- for stdin)"},
	}

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Usage: "*asset `ID`",
	}

	rangeFlags := []cli.Flag{
		cli.StringFlag{Name: "start", Usage: " first `KEY` to include"},
		cli.StringFlag{Name: "end", Usage: " first `KEY` to exclude, empty for no limit"},
	}

	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "store a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetFlags,
			Action:    runCreate,
		},
		{
			Name:      "read",
			Usage:     "show the stored record of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runRead,
		},
		{
			Name:      "update",
			Usage:     "change the status of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{Name: "status, s", Usage: "*new `STATUS`"},
			},
			Action: runUpdate,
		},
		{
			Name:      "transfer",
			Usage:     "change the owner of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{Name: "owner, o", Usage: "*new `OWNER`"},
			},
			Action: runTransfer,
		},
		{
			Name:      "exists",
			Usage:     "check whether an asset is stored",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runExists,
		},
		{
			Name:   "range",
			Usage:  "list all assets in a key range",
			Flags:  rangeFlags,
			Action: runRange,
		},
		{
			Name:  "page",
			Usage: "list one page of a key range",
			Flags: append([]cli.Flag{
				cli.IntFlag{Name: "size", Value: 10, Usage: " records per page `COUNT`"},
				cli.StringFlag{Name: "bookmark, b", Usage: " resume from `BOOKMARK`"},
			}, rangeFlags...),
			Action: runPage,
		},
		{
			Name:      "query",
			Usage:     "run a selector, e.g. '{\"selector\":{\"owner\":\"tom\"}}'",
			ArgsUsage: "SELECTOR",
			Action:    runQuery,
		},
		{
			Name:      "owner",
			Usage:     "list assets held by an owner",
			ArgsUsage: "OWNER",
			Action:    runByOwner,
		},
		{
			Name:      "status",
			Usage:     "list assets in a status",
			ArgsUsage: "STATUS",
			Action:    runByStatus,
		},
		{
			Name:      "id-number",
			Usage:     "list assets registered under an identity document number",
			ArgsUsage: "NUMBER",
			Action:    runByIDNumber,
		},
		{
			Name:      "history",
			Usage:     "list every version of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runHistory,
		},
		{
			Name:   "init-ledger",
			Usage:  "load the sample assets",
			Action: runInitLedger,
		},
		{
			Name:   "info",
			Usage:  "display kycd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display kyc-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: c.GlobalString("fingerprint"),
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		return nil
	}

	return app
}
