/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/pulsewatch/pulsewatch/db"
	"github.com/pulsewatch/pulsewatch/vitals"
)

// alertsResponse carries aggregated alerts plus any per-reading evaluation
// problems. Problems never suppress the alerts of valid readings.
type alertsResponse struct {
	Alerts   []vitals.Alert `json:"alerts"`
	Problems []string       `json:"problems,omitempty"`
}

func aggregateResponse(readings []vitals.Reading) alertsResponse {
	alerts, err := registry.Aggregate(readings)

	response := alertsResponse{Alerts: alerts}
	if err != nil {
		response.Problems = joinedErrorStrings(err)
	}

	return response
}

// joinedErrorStrings flattens an errors.Join result into per-item messages.
func joinedErrorStrings(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, e.Error())
		}

		return messages
	}

	return []string{err.Error()}
}

// SubjectAlerts classifies all stored readings for a subject and returns the
// ones requiring clinical attention, in storage order.
func SubjectAlerts(c flamego.Context) {
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

	rows, err := db.ListReadings(ctx, subjectID, kind, 0)
	if err != nil {
		webLogger.Error("Failed to list readings", "subject", subjectID, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to list readings")
		return
	}

	readings := make([]vitals.Reading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, row.Reading())
	}

	writeJSON(c, http.StatusOK, aggregateResponse(readings))
}

// Evaluate classifies a caller-supplied batch of readings without storing
// anything. This is the stateless entry point for external collaborators.
func Evaluate(c flamego.Context) {
	var input struct {
		Readings []vitals.Reading `json:"readings"`
	}

	if err := json.NewDecoder(c.Request().Body().ReadCloser()).Decode(&input); err != nil {
		writeJSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	writeJSON(c, http.StatusOK, aggregateResponse(input.Readings))
}
