// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/kycledger/fault"
)

// common errors - keep in alphabetic order
const (
	ErrAssetIDIsRequired  = fault.InvalidError("asset id is required")
	ErrIDNumberIsRequired = fault.InvalidError("id number is required")
	ErrOneArgument        = fault.InvalidError("exactly one argument is required")
	ErrOwnerIsRequired    = fault.InvalidError("owner is required")
	ErrStatusIsRequired   = fault.InvalidError("status is required")
)
