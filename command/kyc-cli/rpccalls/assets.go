// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/kycledger/aggregate"
	"github.com/bitmark-inc/kycledger/kyc"
	"github.com/bitmark-inc/kycledger/rpc/assets"
)

// call - perform one request with verbose tracing of both sides
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {

	client.printJson(method+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); err != nil {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

// CreateAsset - store a new asset, returns the transaction id
func (client *Client) CreateAsset(asset *kyc.Asset) (string, error) {
	var reply assets.TxReply
	if err := client.call("Assets.Create", asset, &reply); err != nil {
		return "", err
	}
	return reply.TxID, nil
}

// ReadAsset - fetch the stored record
func (client *Client) ReadAsset(id string) (aggregate.Value, error) {
	var reply assets.ReadReply
	if err := client.call("Assets.Read", assets.IDArguments{ID: id}, &reply); err != nil {
		return aggregate.Value{}, err
	}
	return reply.Record, nil
}

// UpdateAsset - change the status
func (client *Client) UpdateAsset(id string, status string) (string, error) {
	var reply assets.TxReply
	arguments := assets.UpdateArguments{
		ID:     id,
		Status: status,
	}
	if err := client.call("Assets.Update", arguments, &reply); err != nil {
		return "", err
	}
	return reply.TxID, nil
}

// TransferAsset - change the owner
func (client *Client) TransferAsset(id string, owner string) (string, error) {
	var reply assets.TxReply
	arguments := assets.TransferArguments{
		ID:    id,
		Owner: owner,
	}
	if err := client.call("Assets.Transfer", arguments, &reply); err != nil {
		return "", err
	}
	return reply.TxID, nil
}

// AssetExists - check for an asset
func (client *Client) AssetExists(id string) (bool, error) {
	var reply assets.ExistsReply
	if err := client.call("Assets.Exists", assets.IDArguments{ID: id}, &reply); err != nil {
		return false, err
	}
	return reply.Exists, nil
}

// GetRange - all assets in [start, end)
func (client *Client) GetRange(start string, end string) ([]aggregate.Result, error) {
	var reply assets.ResultsReply
	arguments := assets.RangeArguments{
		StartKey: start,
		EndKey:   end,
	}
	if err := client.call("Assets.Range", arguments, &reply); err != nil {
		return nil, err
	}
	return reply.Results, nil
}

// GetRangePage - one page of [start, end) resuming at bookmark
func (client *Client) GetRangePage(start string, end string, pageSize int32, bookmark string) (*kyc.Page, error) {
	var reply kyc.Page
	arguments := assets.RangePageArguments{
		StartKey: start,
		EndKey:   end,
		PageSize: pageSize,
		Bookmark: bookmark,
	}
	if err := client.call("Assets.RangePage", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Query - run a selector document
func (client *Client) Query(selector string) ([]aggregate.Result, error) {
	var reply assets.ResultsReply
	arguments := assets.QueryArguments{
		Query: json.RawMessage(selector),
	}
	if err := client.call("Assets.Query", arguments, &reply); err != nil {
		return nil, err
	}
	return reply.Results, nil
}

// ByOwner - assets held by an owner
func (client *Client) ByOwner(owner string) ([]aggregate.Result, error) {
	var reply assets.ResultsReply
	if err := client.call("Assets.ByOwner", assets.OwnerArguments{Owner: owner}, &reply); err != nil {
		return nil, err
	}
	return reply.Results, nil
}

// ByStatus - assets in one status
func (client *Client) ByStatus(status string) ([]aggregate.Result, error) {
	var reply assets.ResultsReply
	if err := client.call("Assets.ByStatus", assets.StatusArguments{Status: status}, &reply); err != nil {
		return nil, err
	}
	return reply.Results, nil
}

// ByIDNumber - assets registered under an id number
func (client *Client) ByIDNumber(idNumber string) ([]aggregate.Result, error) {
	var reply assets.ResultsReply
	if err := client.call("Assets.ByIDNumber", assets.IDNumberArguments{IDNumber: idNumber}, &reply); err != nil {
		return nil, err
	}
	return reply.Results, nil
}

// History - every version of an asset, oldest first
func (client *Client) History(id string) ([]aggregate.Modification, error) {
	var reply assets.HistoryReply
	if err := client.call("Assets.History", assets.IDArguments{ID: id}, &reply); err != nil {
		return nil, err
	}
	return reply.History, nil
}

// InitLedger - load the sample assets
func (client *Client) InitLedger() (string, error) {
	var reply assets.TxReply
	if err := client.call("Assets.InitLedger", assets.EmptyArguments{}, &reply); err != nil {
		return "", err
	}
	return reply.TxID, nil
}
