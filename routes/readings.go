/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flamego/flamego"

	"github.com/pulsewatch/pulsewatch/db"
	"github.com/pulsewatch/pulsewatch/vitals"
)

// readingInput is one submitted measurement.
type readingInput struct {
	Kind    vitals.MetricKind `json:"kind"`
	Value   float64           `json:"value"`
	TakenAt time.Time         `json:"taken_at,omitzero"`
}

// readingResult reports the stored ID and classification for one submitted
// reading, or the per-item error that kept it from being stored. Severity is
// nil for errored slots; an error is not a classification.
type readingResult struct {
	Index      int               `json:"index"`
	ID         string            `json:"id,omitempty"`
	Kind       vitals.MetricKind `json:"kind"`
	Value      float64           `json:"value"`
	Severity   *vitals.Severity  `json:"severity,omitempty"`
	Recognized bool              `json:"recognized"`
	Error      string            `json:"error,omitempty"`
}

// SubmitReadings stores a batch of readings for a subject and returns the
// classification of each. A reading that fails validation is reported in its
// slot and skipped; it does not abort the rest of the batch.
func SubmitReadings(c flamego.Context) {
	ctx := c.Request().Context()
	subjectID := c.Param("id")

	subject, err := db.GetSubject(ctx, subjectID)
	if err != nil {
		webLogger.Error("Failed to get subject", "id", subjectID, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to get subject")
		return
	}

	if subject == nil {
		writeJSONError(c, http.StatusNotFound, "subject not found")
		return
	}

	var input struct {
		Readings []readingInput `json:"readings"`
	}

	if err := json.NewDecoder(c.Request().Body().ReadCloser()).Decode(&input); err != nil {
		writeJSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(input.Readings) == 0 {
		writeJSONError(c, http.StatusBadRequest, "readings are required")
		return
	}

	results := make([]readingResult, 0, len(input.Readings))

	for i, reading := range input.Readings {
		result := readingResult{Index: i, Kind: reading.Kind, Value: reading.Value}

		classification, err := registry.Classify(reading.Kind, reading.Value)
		if err != nil {
			if errors.Is(err, vitals.ErrInvalidValue) {
				result.Error = "value must be finite"
				results = append(results, result)
				continue
			}

			webLogger.Error("Failed to classify reading", "kind", reading.Kind, "error", err)
			result.Error = "classification failed"
			results = append(results, result)
			continue
		}

		if !classification.Recognized {
			// Stored anyway; unknown kinds are a data-quality concern, not
			// a rejection.
			webLogger.Warn("Reading for uncataloged metric kind",
				"event", "unknown_metric_kind",
				"kind", reading.Kind,
				"subject", subjectID,
			)
		}

		takenAt := reading.TakenAt
		if takenAt.IsZero() {
			takenAt = time.Now().UTC()
		}

		id, err := db.CreateReading(ctx, db.CreateReadingInput{
			SubjectID:  subjectID,
			MetricKind: reading.Kind,
			Value:      reading.Value,
			TakenAt:    takenAt,
		})
		if err != nil {
			webLogger.Error("Failed to store reading", "kind", reading.Kind, "error", err)
			result.Error = "failed to store reading"
			results = append(results, result)
			continue
		}

		result.ID = id
		result.Severity = &classification.Severity
		result.Recognized = classification.Recognized
		results = append(results, result)
	}

	writeJSON(c, http.StatusOK, map[string]any{"results": results})
}

// ListSubjectReadings returns stored readings for a subject, optionally
// filtered with ?kind=.
func ListSubjectReadings(c flamego.Context) {
	ctx := c.Request().Context()
	subjectID := c.Param("id")

	subject, err := db.GetSubject(ctx, subjectID)
	if err != nil {
		webLogger.Error("Failed to get subject", "id", subjectID, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to get subject")
		return
	}

	if subject == nil {
		writeJSONError(c, http.StatusNotFound, "subject not found")
		return
	}

	kind := vitals.MetricKind(c.Query("kind"))

	readings, err := db.ListReadings(ctx, subjectID, kind, 0)
	if err != nil {
		webLogger.Error("Failed to list readings", "subject", subjectID, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to list readings")
		return
	}

	if readings == nil {
		readings = []db.VitalReading{}
	}

	writeJSON(c, http.StatusOK, map[string]any{"readings": readings})
}

// DeleteSubjectReading removes a single stored reading.
func DeleteSubjectReading(c flamego.Context) {
	ctx := c.Request().Context()
	subjectID := c.Param("id")

	subject, err := db.GetSubject(ctx, subjectID)
	if err != nil {
		webLogger.Error("Failed to get subject", "id", subjectID, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to get subject")
		return
	}

	if subject == nil {
		writeJSONError(c, http.StatusNotFound, "subject not found")
		return
	}

	if err := db.DeleteReading(ctx, c.Param("rid")); err != nil {
		webLogger.Error("Failed to delete reading", "id", c.Param("rid"), "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to delete reading")
		return
	}

	c.ResponseWriter().WriteHeader(http.StatusNoContent)
}
