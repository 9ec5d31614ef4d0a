// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - the current ledger height
//
// the registry stamps new records with this height and computes ages
// from it; it only ever needs the number, never the block contents
package blockheader

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

// Header - holds the current block height
type Header struct {
	sync.RWMutex // to allow locking

	log    *logger.L
	height uint64 // this is the current block height
}

// New - setup the height tracker starting from the genesis height
func New(genesisHeight uint64) *Header {
	log := logger.New("blockheader")
	log.Infof("block height: %d", genesisHeight)

	return &Header{
		log:    log,
		height: genesisHeight,
	}
}

// Set - set current height
func (h *Header) Set(height uint64) {
	h.Lock()
	if height < h.height {
		h.log.Warnf("height moved back: %d → %d", h.height, height)
	}
	h.height = height
	h.Unlock()
}

// Increment - advance by one block, returns the new height
func (h *Header) Increment() uint64 {
	h.Lock()
	defer h.Unlock()

	h.height += 1
	return h.height
}

// Height - return current height
func (h *Header) Height() uint64 {
	h.RLock()
	defer h.RUnlock()

	return h.height
}
