// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a 64 bit unsigned counter that is safe for
// concurrent access
//
// the asset registry uses it as the in-memory value of its
// identifier allocator: it only ever moves forward
package counter

import (
	"sync/atomic"
)

// Counter - just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Next - the value the next Increment would return, without changing
// the counter
func (ic *Counter) Next() uint64 {
	return atomic.LoadUint64((*uint64)(ic)) + 1
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Set - restore a previously saved value
func (ic *Counter) Set(value uint64) {
	atomic.StoreUint64((*uint64)(ic), value)
}
