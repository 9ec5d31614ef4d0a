// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the asset registry service
//
// every operation runs under the registry lock and either commits one
// batch of writes or returns an error having written nothing; the first
// failing check decides the error, which is returned unwrapped
//
// check order:
//
//	create              fields
//	update              exists, owner, fields
//	grantAccess         exists, owner
//	revokeAccess        exists, owner, accessor is not caller
//	transferOwnership   exists, owner
//	getAnalytics        exists, owner | grant | administrator
//	lockdown            exists, owner | administrator
//	verifyIntegrity     exists, owner | grant | administrator
//	diagnostics         administrator
//	delete              exists, owner
//	augmentMetadata     exists, owner, labels
//	markHistorical      exists, owner, labels
package registry
