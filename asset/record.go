// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
)

// Identifier - the allocator assigned key of a record
type Identifier uint64

// identifier key length
const identifierLength = 8

// Bytes - big endian key form, so keys sort in allocation order
func (id Identifier) Bytes() []byte {
	buffer := make([]byte, identifierLength)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// String - decimal form
func (id Identifier) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IdentifierFromBytes - decode the first 8 bytes of a key
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	if len(buffer) < identifierLength {
		return 0, fault.RecordCorrupt
	}
	return Identifier(binary.BigEndian.Uint64(buffer[:identifierLength])), nil
}

// Record - one registered asset
type Record struct {
	Name      string           `json:"name"`
	Owner     account.Identity `json:"owner"`
	Size      uint64           `json:"size"`
	CreatedAt uint64           `json:"created_at"`
	Summary   string           `json:"summary"`
	Labels    []string         `json:"labels"`
}

// Age - blocks since creation; zero if the height is earlier than
// the creation height
func (r *Record) Age(height uint64) uint64 {
	if height < r.CreatedAt {
		return 0
	}
	return height - r.CreatedAt
}
