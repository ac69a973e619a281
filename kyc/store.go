// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kyc

import (
	"github.com/bitmark-inc/kycledger/compositekey"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/ledger"
)

// IndexName - object type of the id number index
const IndexName = "kyc~name"

// value stored under each index key
var indexMarker = []byte{0x00}

// IndexKey - the index key for an asset
func IndexKey(idNumber string, assetID string) (string, error) {
	return compositekey.Create(IndexName, []string{idNumber, assetID})
}

// CreateAsset - store a new asset and its id number index entry
//
// fails if the asset already exists; the index key is derived before
// anything is written
func CreateAsset(stub ledger.Stub, asset *Asset) error {
	if nil == asset {
		return fault.ErrMissingParameters
	}
	if err := ValidateID(asset.AssetID); nil != err {
		return err
	}

	exists, err := AssetExists(stub, asset.AssetID)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrAssetAlreadyExists
	}

	indexKey, err := IndexKey(asset.IDNumber, asset.AssetID)
	if nil != err {
		return err
	}

	packed, err := asset.Pack()
	if nil != err {
		return err
	}

	if err := stub.PutState(asset.AssetID, packed); nil != err {
		return err
	}
	return stub.PutState(indexKey, indexMarker)
}

// ReadAsset - the stored encoding of an asset, returned verbatim
func ReadAsset(stub ledger.Stub, id string) ([]byte, error) {
	buffer, err := stub.GetState(id)
	if nil != err {
		return nil, err
	}
	if 0 == len(buffer) {
		return nil, fault.ErrAssetNotFound
	}
	return buffer, nil
}

// AssetExists - true if a non-empty value is stored under the id
func AssetExists(stub ledger.Stub, id string) (bool, error) {
	buffer, err := stub.GetState(id)
	if nil != err {
		return false, err
	}
	return 0 != len(buffer), nil
}

// UpdateAsset - overwrite the status of an existing asset
//
// any status text is accepted
func UpdateAsset(stub ledger.Stub, id string, status string) error {
	return modify(stub, id, func(a *Asset) {
		a.Status = status
	})
}

// TransferAsset - overwrite the owner of an existing asset
func TransferAsset(stub ledger.Stub, id string, owner string) error {
	return modify(stub, id, func(a *Asset) {
		a.Owner = owner
	})
}

// read, change a single field and write back the whole record
func modify(stub ledger.Stub, id string, change func(*Asset)) error {
	buffer, err := ReadAsset(stub, id)
	if nil != err {
		return err
	}

	asset, err := Unpack(buffer)
	if nil != err {
		return err
	}

	change(asset)

	packed, err := asset.Pack()
	if nil != err {
		return err
	}
	return stub.PutState(id, packed)
}
