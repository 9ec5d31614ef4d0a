// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - asset records and the rules they must satisfy
//
// a record is only ever packed for storage after it passes Validate,
// so every stored record is within bounds:
//
//	name      1..64 characters
//	size      1..999,999,999
//	summary   1..128 characters
//	labels    1..10 labels of 1..32 characters each
package asset
