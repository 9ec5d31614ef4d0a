// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetregistry/asset"
)

// Analytics - reply of GetAnalytics
type Analytics struct {
	Age        uint64 `json:"age"`
	Size       uint64 `json:"size"`
	LabelCount int    `json:"label_count"`
}

// Integrity - reply of VerifyIntegrity
type Integrity struct {
	Match  bool         `json:"match"`
	Height uint64       `json:"height"`
	Age    uint64       `json:"age"`
	Digest asset.Digest `json:"digest"`
}

// Diagnostics - reply of Diagnostics
type Diagnostics struct {
	TotalAssets uint64 `json:"total_assets"`
	Operational bool   `json:"operational"`
	Height      uint64 `json:"height"`
}
