/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flamego/flamego"

	"github.com/pulsewatch/pulsewatch/db"
)

// ListSubjects returns all subjects with reading counts.
func ListSubjects(c flamego.Context) {
	subjects, err := db.ListSubjects(c.Request().Context())
	if err != nil {
		webLogger.Error("Failed to list subjects", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to list subjects")
		return
	}

	if subjects == nil {
		subjects = []db.SubjectSummary{}
	}

	writeJSON(c, http.StatusOK, map[string]any{"subjects": subjects})
}

// CreateSubject creates a new tracked subject.
func CreateSubject(c flamego.Context) {
	var input struct {
		Name  string  `json:"name"`
		Notes *string `json:"notes"`
	}

	if err := json.NewDecoder(c.Request().Body().ReadCloser()).Decode(&input); err != nil {
		writeJSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		writeJSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	id, err := db.CreateSubject(c.Request().Context(), input.Name, input.Notes)
	if err != nil {
		webLogger.Error("Failed to create subject", "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to create subject")
		return
	}

	writeJSON(c, http.StatusCreated, map[string]string{"id": id})
}

// ViewSubject returns a single subject by ID.
func ViewSubject(c flamego.Context) {
	subject, err := db.GetSubject(c.Request().Context(), c.Param("id"))
	if err != nil {
		webLogger.Error("Failed to get subject", "id", c.Param("id"), "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to get subject")
		return
	}

	if subject == nil {
		writeJSONError(c, http.StatusNotFound, "subject not found")
		return
	}

	writeJSON(c, http.StatusOK, subject)
}

// DeleteSubject deletes a subject and its readings.
func DeleteSubject(c flamego.Context) {
	if err := db.DeleteSubject(c.Request().Context(), c.Param("id")); err != nil {
		webLogger.Error("Failed to delete subject", "id", c.Param("id"), "error", err)
		writeJSONError(c, http.StatusInternalServerError, "failed to delete subject")
		return
	}

	c.ResponseWriter().WriteHeader(http.StatusNoContent)
}
