// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

//go:generate mockgen -source=clock.go -destination=mocks/clock.go -package=mocks

// Clock - source of the current ledger height
type Clock interface {
	Height() uint64
}
