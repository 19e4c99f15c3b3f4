/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package routes implements the JSON API surface: subject and reading
// data entry, and classification/alert queries backed by the vitals engine.
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/pulsewatch/pulsewatch/logging"
	"github.com/pulsewatch/pulsewatch/vitals"
)

var webLogger = logging.Logger(logging.SourceWeb)

// registry is the process-wide range catalog, set once at startup before the
// server starts accepting requests and read-only afterwards.
var registry *vitals.Registry

// SetRegistry installs the range registry used by all handlers.
func SetRegistry(r *vitals.Registry) {
	registry = r
}

// Healthz reports service liveness.
func Healthz(c flamego.Context) {
	writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(c flamego.Context, status int, v any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		webLogger.Error("Failed to encode JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSON(c, status, map[string]string{"error": message})
}
