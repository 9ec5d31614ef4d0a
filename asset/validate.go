// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"unicode/utf8"

	"github.com/bitmark-inc/assetregistry/fault"
)

// limits, lengths are in characters
const (
	MinTextLength    = 1
	MaxNameLength    = 64
	MaxSummaryLength = 128
	MaxLabelLength   = 32
	MaxLabelCount    = 10
	MinSize          = 1
	SizeLimit        = 1000000000 // exclusive

	HistoricalLabel = "HISTORICAL"
)

// ValidTextLength - minimum ≤ characters in s ≤ maximum
func ValidTextLength(s string, minimum int, maximum int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minimum && n < maximum+1
}

// ValidLabel - a single label
func ValidLabel(label string) bool {
	return ValidTextLength(label, MinTextLength, MaxLabelLength)
}

// ValidLabelSet - a non-empty list of at most MaxLabelCount valid labels
func ValidLabelSet(labels []string) bool {
	if len(labels) < 1 || len(labels) > MaxLabelCount {
		return false
	}
	for _, l := range labels {
		if !ValidLabel(l) {
			return false
		}
	}
	return true
}

// ValidSize - MinSize ≤ n < SizeLimit
func ValidSize(n uint64) bool {
	return n >= MinSize && n < SizeLimit
}

// CheckFields - validate the caller supplied fields of a record
//
// the first failing rule decides the error
func CheckFields(name string, size uint64, summary string, labels []string) error {
	if !ValidTextLength(name, MinTextLength, MaxNameLength) {
		return fault.NameInvalid
	}
	if !ValidSize(size) {
		return fault.SizeConstraintViolation
	}
	if !ValidTextLength(summary, MinTextLength, MaxSummaryLength) {
		return fault.NameInvalid
	}
	if !ValidLabelSet(labels) {
		return fault.InvalidMetadataStructure
	}
	return nil
}

// Validate - check every bounded field of a record
func (r *Record) Validate() error {
	return CheckFields(r.Name, r.Size, r.Summary, r.Labels)
}

// AppendLabels - existing followed by extra
//
// each extra label must be valid and the result may not exceed
// MaxLabelCount; existing is never modified
func AppendLabels(existing []string, extra []string) ([]string, error) {
	for _, l := range extra {
		if !ValidLabel(l) {
			return nil, fault.InvalidMetadataStructure
		}
	}
	if len(existing)+len(extra) > MaxLabelCount {
		return nil, fault.InvalidMetadataStructure
	}

	result := make([]string, 0, len(existing)+len(extra))
	result = append(result, existing...)
	return append(result, extra...), nil
}
