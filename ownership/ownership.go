// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - who may do what to an asset
//
// each check is a pure function of a Subject; policies are checks
// combined with AnyOf
package ownership

import (
	"github.com/bitmark-inc/assetregistry/account"
)

// Subject - the facts an authorisation decision is made from
type Subject struct {
	Caller        account.Identity
	Owner         account.Identity
	Administrator account.Identity
	Granted       bool // caller holds an enabled grant on the asset
}

// Check - a single capability test
type Check func(Subject) bool

// IsOwner - caller owns the asset
func IsOwner(s Subject) bool {
	return !s.Caller.IsEmpty() && s.Caller == s.Owner
}

// IsAdministrator - caller is the registry administrator
func IsAdministrator(s Subject) bool {
	return !s.Caller.IsEmpty() && s.Caller == s.Administrator
}

// HasGrant - caller holds an enabled grant
func HasGrant(s Subject) bool {
	return s.Granted
}

// AnyOf - passes if at least one check passes
func AnyOf(checks ...Check) Check {
	return func(s Subject) bool {
		for _, c := range checks {
			if c(s) {
				return true
			}
		}
		return false
	}
}

// policies
var (
	CanModify   = AnyOf(IsOwner)
	CanRead     = AnyOf(IsOwner, HasGrant, IsAdministrator)
	CanLockdown = AnyOf(IsOwner, IsAdministrator)
	CanDiagnose = AnyOf(IsAdministrator)
)
