/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"

	"github.com/pulsewatch/pulsewatch/db"
	"github.com/pulsewatch/pulsewatch/vitals"
)

// StoredRanges returns the range catalog rows persisted in the database.
// Unlike /api/catalog, which reflects the in-memory registry, this reads the
// metric_ranges table so operators can confirm what the last schema sync
// wrote.
func StoredRanges(c flamego.Context) {
	ranges, err := db.ListMetricRanges(c.Request().Context())
	if err != nil {
		webLogger.Error("Failed to list stored metric ranges", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to list stored metric ranges")
		return
	}

	if ranges == nil {
		ranges = []db.MetricRange{}
	}

	writeJSON(c, http.StatusOK, map[string]any{"ranges": ranges})
}

// StoredRange returns the persisted range row for a single metric kind.
func StoredRange(c flamego.Context) {
	kind := vitals.MetricKind(c.Param("kind"))

	mr, err := db.GetMetricRange(c.Request().Context(), kind)
	if err != nil {
		webLogger.Error("Failed to get stored metric range", "kind", kind, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to get stored metric range")
		return
	}

	if mr == nil {
		writeJSONError(c, http.StatusNotFound, "metric range not found")
		return
	}

	writeJSON(c, http.StatusOK, mr)
}
