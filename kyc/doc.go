// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kyc - identity verification records in the world state
//
// Keys:
//
//	assetID                                 - the asset record
//	                                          data: JSON encoded Asset
//	0x00 kyc~name 0x00 idNumber 0x00 assetID 0x00
//	                                        - index by id number, written once at create
//	                                          data: 0x00
//
// the status field is free text, typically pending, approved or
// rejected; no transition between values is enforced here
package kyc
