// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = asset identifier as big endian uint64 (8 bytes)
// 4. accessor     = identity bytes of the principal holding a grant
// 5. count        = big endian uint64 (8 bytes)
//
// Version:
//
//	0x00 ++ "VERSION"          - database version
//	                             data: big endian uint32 (4 bytes)
//
// Assets:
//
//	A ++ id                    - asset records
//	                             data: packed asset record
//
// Access control:
//
//	G ++ id ++ accessor        - access grants
//	                             data: 0x01 enabled / 0x00 disabled
//
// Counters:
//
//	N ++ name                  - allocator state
//	                             data: count
//
// Grant rows are keyed by the asset id but are independent of the
// asset rows: removing an asset leaves its grants in place.
package storage
