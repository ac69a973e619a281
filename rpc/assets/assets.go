// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"encoding/json"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kycledger/aggregate"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/kyc"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/query"
	"github.com/bitmark-inc/kycledger/rpc/metrics"
	"github.com/bitmark-inc/kycledger/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	maximumPageSize = 100
)

// Assets - type for the RPC
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Begin   func() (ledger.Transaction, error)
}

// New - create the RPC service, begin opens one ledger transaction per call
func New(log *logger.L, limiter *rate.Limiter, begin func() (ledger.Transaction, error)) *Assets {
	return &Assets{
		Log:     log,
		Limiter: limiter,
		Begin:   begin,
	}
}

// IDArguments - a single asset
type IDArguments struct {
	ID string `json:"id"`
}

// UpdateArguments - new status for an asset
type UpdateArguments struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// TransferArguments - new owner for an asset
type TransferArguments struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`
}

// RangeArguments - key range, empty end is unbounded
type RangeArguments struct {
	StartKey string `json:"startKey"`
	EndKey   string `json:"endKey"`
}

// RangePageArguments - key range with page size and resume point
type RangePageArguments struct {
	StartKey string `json:"startKey"`
	EndKey   string `json:"endKey"`
	PageSize int32  `json:"pageSize"`
	Bookmark string `json:"bookmark"`
}

// QueryArguments - a selector document
type QueryArguments struct {
	Query json.RawMessage `json:"query"`
}

// OwnerArguments - owner to match
type OwnerArguments struct {
	Owner string `json:"owner"`
}

// StatusArguments - status to match
type StatusArguments struct {
	Status string `json:"status"`
}

// IDNumberArguments - id number to look up
type IDNumberArguments struct {
	IDNumber string `json:"idNumber"`
}

// EmptyArguments - no arguments
type EmptyArguments struct{}

// TxReply - transaction that applied a change
type TxReply struct {
	TxID string `json:"txId"`
}

// ReadReply - stored record of an asset
type ReadReply struct {
	Record aggregate.Value `json:"record"`
}

// ExistsReply - whether an asset exists
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// ResultsReply - list of key and record pairs
type ResultsReply struct {
	Results []aggregate.Result `json:"results"`
}

// HistoryReply - all versions of an asset
type HistoryReply struct {
	History []aggregate.Modification `json:"history"`
}

// Create - RPC to store a new asset
//
// the asset document is decoded strictly, unknown fields are rejected
func (assets *Assets) Create(arguments *json.RawMessage, reply *TxReply) error {
	if nil == arguments || 0 == len(*arguments) {
		return fault.ErrMissingParameters
	}

	return assets.update("Assets.Create", func(trx ledger.Transaction) error {
		asset, err := kyc.Unpack(*arguments)
		if nil != err {
			return fault.ErrInvalidAsset
		}
		assets.Log.Infof("Assets.Create: %q", asset.AssetID)

		reply.TxID = trx.GetTxID()
		return kyc.CreateAsset(trx, asset)
	})
}

// Read - RPC to fetch the stored record of an asset
func (assets *Assets) Read(arguments *IDArguments, reply *ReadReply) error {
	assets.Log.Debugf("Assets.Read: %q", arguments.ID)

	return assets.view("Assets.Read", func(trx ledger.Transaction) error {
		buffer, err := kyc.ReadAsset(trx, arguments.ID)
		if nil != err {
			return err
		}
		reply.Record = aggregate.NewValue(buffer)
		return nil
	})
}

// Update - RPC to change the status of an asset
func (assets *Assets) Update(arguments *UpdateArguments, reply *TxReply) error {
	assets.Log.Infof("Assets.Update: %q  status: %q", arguments.ID, arguments.Status)

	return assets.update("Assets.Update", func(trx ledger.Transaction) error {
		reply.TxID = trx.GetTxID()
		return kyc.UpdateAsset(trx, arguments.ID, arguments.Status)
	})
}

// Transfer - RPC to change the owner of an asset
func (assets *Assets) Transfer(arguments *TransferArguments, reply *TxReply) error {
	assets.Log.Infof("Assets.Transfer: %q  owner: %q", arguments.ID, arguments.Owner)

	return assets.update("Assets.Transfer", func(trx ledger.Transaction) error {
		reply.TxID = trx.GetTxID()
		return kyc.TransferAsset(trx, arguments.ID, arguments.Owner)
	})
}

// Exists - RPC to check for an asset
func (assets *Assets) Exists(arguments *IDArguments, reply *ExistsReply) error {
	assets.Log.Debugf("Assets.Exists: %q", arguments.ID)

	return assets.view("Assets.Exists", func(trx ledger.Transaction) error {
		exists, err := kyc.AssetExists(trx, arguments.ID)
		reply.Exists = exists
		return err
	})
}

// Range - RPC to list all assets in a key range
func (assets *Assets) Range(arguments *RangeArguments, reply *ResultsReply) error {
	assets.Log.Debugf("Assets.Range: %q to %q", arguments.StartKey, arguments.EndKey)

	return assets.view("Assets.Range", func(trx ledger.Transaction) error {
		results, err := kyc.GetAssetsByRange(trx, arguments.StartKey, arguments.EndKey)
		reply.Results = results
		return err
	})
}

// RangePage - RPC to list one page of a key range
func (assets *Assets) RangePage(arguments *RangePageArguments, reply *kyc.Page) error {
	assets.Log.Debugf("Assets.RangePage: %+v", arguments)

	// the page size is charged against the rate limit and bounded
	limit := func() error {
		return ratelimit.LimitN(assets.Limiter, int(arguments.PageSize), maximumPageSize)
	}

	return assets.run("Assets.RangePage", false, limit, func(trx ledger.Transaction) error {
		page, err := kyc.GetAssetsByRangeWithPagination(trx, arguments.StartKey, arguments.EndKey, arguments.PageSize, arguments.Bookmark)
		if nil != err {
			return err
		}
		*reply = *page
		return nil
	})
}

// Query - RPC to list all assets matching a selector
func (assets *Assets) Query(arguments *QueryArguments, reply *ResultsReply) error {
	return assets.view("Assets.Query", func(trx ledger.Transaction) error {
		selector, err := query.Parse(arguments.Query, kyc.QueryFields)
		if nil != err {
			return err
		}
		assets.Log.Debugf("Assets.Query: %s", selector)

		results, err := kyc.QueryAssets(trx, selector)
		reply.Results = results
		return err
	})
}

// ByOwner - RPC to list the assets of an owner
func (assets *Assets) ByOwner(arguments *OwnerArguments, reply *ResultsReply) error {
	assets.Log.Debugf("Assets.ByOwner: %q", arguments.Owner)

	return assets.view("Assets.ByOwner", func(trx ledger.Transaction) error {
		results, err := kyc.QueryAssetsByOwner(trx, arguments.Owner)
		reply.Results = results
		return err
	})
}

// ByStatus - RPC to list the assets with a status
func (assets *Assets) ByStatus(arguments *StatusArguments, reply *ResultsReply) error {
	assets.Log.Debugf("Assets.ByStatus: %q", arguments.Status)

	return assets.view("Assets.ByStatus", func(trx ledger.Transaction) error {
		results, err := kyc.QueryAssetsByStatus(trx, arguments.Status)
		reply.Results = results
		return err
	})
}

// ByIDNumber - RPC to list the assets registered under an id number
func (assets *Assets) ByIDNumber(arguments *IDNumberArguments, reply *ResultsReply) error {
	assets.Log.Debugf("Assets.ByIDNumber: %q", arguments.IDNumber)

	return assets.view("Assets.ByIDNumber", func(trx ledger.Transaction) error {
		results, err := kyc.GetAssetsByIDNumber(trx, arguments.IDNumber)
		reply.Results = results
		return err
	})
}

// History - RPC to list every committed version of an asset
func (assets *Assets) History(arguments *IDArguments, reply *HistoryReply) error {
	assets.Log.Debugf("Assets.History: %q", arguments.ID)

	return assets.view("Assets.History", func(trx ledger.Transaction) error {
		history, err := kyc.GetAssetHistory(trx, arguments.ID)
		reply.History = history
		return err
	})
}

// InitLedger - RPC to create the sample assets
func (assets *Assets) InitLedger(_ *EmptyArguments, reply *TxReply) error {
	assets.Log.Info("Assets.InitLedger")

	return assets.update("Assets.InitLedger", func(trx ledger.Transaction) error {
		reply.TxID = trx.GetTxID()
		return kyc.InitLedger(trx)
	})
}

// run a read only call, the transaction is always discarded
func (assets *Assets) view(method string, f func(ledger.Transaction) error) error {
	return assets.run(method, false, assets.limitOne, f)
}

// run a writing call, committed only if f succeeds
func (assets *Assets) update(method string, f func(ledger.Transaction) error) error {
	return assets.run(method, true, assets.limitOne, f)
}

func (assets *Assets) limitOne() error {
	return ratelimit.Limit(assets.Limiter)
}

func (assets *Assets) run(method string, write bool, limit func() error, f func(ledger.Transaction) error) (err error) {
	start := time.Now()
	defer func() {
		metrics.Observe(method, start, err)
	}()

	if err = limit(); nil != err {
		return err
	}

	trx, err := assets.Begin()
	if nil != err {
		assets.Log.Errorf("%s: begin transaction error: %s", method, err)
		return err
	}

	if err = f(trx); nil != err {
		trx.Abort()
		if isClassified(err) {
			assets.Log.Debugf("%s: rejected: %s", method, err)
		} else {
			assets.Log.Errorf("%s: error: %s", method, err)
		}
		return err
	}

	if !write {
		trx.Abort()
		return nil
	}

	if err = trx.Commit(); nil != err {
		assets.Log.Errorf("%s: commit error: %s", method, err)
		return err
	}
	assets.Log.Infof("%s: committed: %s", method, trx.GetTxID())
	return nil
}

// client errors are expected and not logged as failures
func isClassified(err error) bool {
	return fault.IsErrExists(err) || fault.IsErrInvalid(err) || fault.IsErrNotFound(err) || fault.IsErrRecord(err)
}
