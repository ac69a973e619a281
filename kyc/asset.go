// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kyc

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/bitmark-inc/kycledger/compositekey"
	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/kycledger/query"
)

// Asset - a single identity verification record
type Asset struct {
	AssetID          string `json:"assetID"`
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"dateOfBirth"`
	IDNumber         string `json:"idNumber"`
	Gender           string `json:"gender"`
	Status           string `json:"status"`
	ApprovalCount    int    `json:"approvalCount"`
	Owner            string `json:"owner"`
	ProofOfResidence string `json:"proofOfResidence"`
	ProofOfID        string `json:"proofOfId"`
}

// QueryFields - fields a selector may refer to
var QueryFields = query.Fields{
	"assetID",
	"firstname",
	"lastname",
	"address",
	"dateOfBirth",
	"idNumber",
	"gender",
	"status",
	"approvalCount",
	"owner",
	"proofOfResidence",
	"proofOfId",
}

// Pack - encode an asset for storage
func (a *Asset) Pack() ([]byte, error) {
	return json.Marshal(a)
}

// Unpack - strict decode of a stored asset
//
// unknown fields or trailing data are rejected
func Unpack(buffer []byte) (*Asset, error) {
	dec := json.NewDecoder(bytes.NewReader(buffer))
	dec.DisallowUnknownFields()

	trimmed := bytes.TrimSpace(buffer)
	if 0 == len(trimmed) || '{' != trimmed[0] {
		return nil, fault.ErrDecodeFailed
	}

	a := &Asset{}
	if err := dec.Decode(a); nil != err {
		return nil, fault.ErrDecodeFailed
	}
	if _, err := dec.Token(); io.EOF != err {
		return nil, fault.ErrDecodeFailed
	}
	return a, nil
}

// ValidateID - asset ids must be non-empty and outside the composite key namespace
func ValidateID(id string) error {
	if "" == id || compositekey.IsComposite(id) {
		return fault.ErrInvalidAssetID
	}
	return nil
}
