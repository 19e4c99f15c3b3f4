/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"

	"github.com/pulsewatch/pulsewatch/vitals"
)

// catalogEntry is the API shape of one catalog range.
type catalogEntry struct {
	Kind     vitals.MetricKind `json:"kind"`
	Unit     string            `json:"unit,omitempty"`
	Normal   vitals.Range      `json:"normal"`
	Critical *vitals.Range     `json:"critical,omitempty"`
}

// Catalog returns the active range catalog: every metric kind the classifier
// recognizes, with its normal and (when defined) critical band.
func Catalog(c flamego.Context) {
	defs := registry.Definitions()
	entries := make([]catalogEntry, 0, len(defs))

	for _, def := range defs {
		pair, ok := registry.Lookup(def.Kind)
		if !ok {
			continue
		}

		entries = append(entries, catalogEntry{
			Kind:     def.Kind,
			Unit:     def.Unit,
			Normal:   pair.Normal,
			Critical: pair.Critical,
		})
	}

	writeJSON(c, http.StatusOK, map[string]any{"ranges": entries})
}
