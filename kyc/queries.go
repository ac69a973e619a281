// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kyc

import (
	"github.com/bitmark-inc/kycledger/aggregate"
	"github.com/bitmark-inc/kycledger/compositekey"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
	"github.com/bitmark-inc/kycledger/query"
)

// Page - one page of a paginated range scan
type Page struct {
	Results          []aggregate.Result `json:"results"`
	ResponseMetadata PageMetadata       `json:"ResponseMetadata"`
}

// PageMetadata - size of the page and where to resume
type PageMetadata struct {
	RecordsCount int32  `json:"RecordsCount"`
	Bookmark     string `json:"Bookmark"`
}

// GetAssetsByRange - all entries with startKey <= key < endKey
func GetAssetsByRange(stub ledger.Stub, startKey string, endKey string) ([]aggregate.Result, error) {
	iterator, err := stub.GetStateByRange(startKey, endKey)
	if nil != err {
		return nil, err
	}
	return aggregate.States(iterator)
}

// QueryAssetsByOwner - all assets held by an owner
func QueryAssetsByOwner(stub ledger.Stub, owner string) ([]aggregate.Result, error) {
	return QueryAssets(stub, query.Equal("owner", owner))
}

// QueryAssetsByStatus - all assets with a status
func QueryAssetsByStatus(stub ledger.Stub, status string) ([]aggregate.Result, error) {
	return QueryAssets(stub, query.Equal("status", status))
}

// QueryAssets - all assets matching a selector
func QueryAssets(stub ledger.Stub, selector *query.Selector) ([]aggregate.Result, error) {
	if nil == selector {
		return nil, fault.ErrInvalidQuery
	}
	iterator, err := stub.GetQueryResult(selector)
	if nil != err {
		return nil, err
	}
	return aggregate.States(iterator)
}

// GetAssetsByRangeWithPagination - at most pageSize entries after the bookmark
//
// an empty bookmark starts at startKey; only meaningful for read-only calls
func GetAssetsByRangeWithPagination(stub ledger.Stub, startKey string, endKey string, pageSize int32, bookmark string) (*Page, error) {
	if pageSize <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iterator, metadata, err := stub.GetStateByRangeWithPagination(startKey, endKey, pageSize, bookmark)
	if nil != err {
		return nil, err
	}

	results, err := aggregate.States(iterator)
	if nil != err {
		return nil, err
	}

	page := &Page{
		Results: results,
		ResponseMetadata: PageMetadata{
			RecordsCount: int32(len(results)),
		},
	}
	if nil != metadata {
		page.ResponseMetadata.Bookmark = metadata.Bookmark
	}
	return page, nil
}

// GetAssetsByIDNumber - assets registered under an id number, in asset id order
func GetAssetsByIDNumber(stub ledger.Stub, idNumber string) ([]aggregate.Result, error) {
	startKey, endKey, err := compositekey.PartialRange(IndexName, []string{idNumber})
	if nil != err {
		return nil, err
	}

	iterator, err := stub.GetStateByRange(startKey, endKey)
	if nil != err {
		return nil, err
	}
	index, err := aggregate.States(iterator)
	if nil != err {
		return nil, err
	}

	results := make([]aggregate.Result, 0, len(index))
	for _, entry := range index {
		_, attributes, err := compositekey.Split(entry.Key)
		if nil != err || 2 != len(attributes) {
			continue
		}
		assetID := attributes[1]

		buffer, err := stub.GetState(assetID)
		if nil != err {
			return nil, err
		}
		if 0 == len(buffer) {
			continue
		}
		results = append(results, aggregate.Result{
			Key:    assetID,
			Record: aggregate.NewValue(buffer),
		})
	}
	return results, nil
}

// GetAssetHistory - every committed version of an asset, oldest first
func GetAssetHistory(stub ledger.Stub, id string) ([]aggregate.Modification, error) {
	if err := ValidateID(id); nil != err {
		return nil, err
	}
	iterator, err := stub.GetHistoryForKey(id)
	if nil != err {
		return nil, err
	}
	return aggregate.History(iterator)
}

// sample data for an empty ledger
var seedAssets = []Asset{
	{
		AssetID:          "asset1",
		Firstname:        "John",
		Lastname:         "Doe",
		Address:          "",
		DateOfBirth:      "14/01/1980",
		IDNumber:         "1234456",
		Gender:           "male",
		Status:           "pending",
		ApprovalCount:    0,
		Owner:            "122121212",
		ProofOfResidence: "kjkjkjkjkjk",
		ProofOfID:        "hghhg",
	},
}

// InitLedger - create the sample assets
//
// not idempotent, a second call fails with the already exists error
func InitLedger(stub ledger.Stub) error {
	for i := range seedAssets {
		asset := seedAssets[i]
		if err := CreateAsset(stub, &asset); nil != err {
			return err
		}
	}
	return nil
}
