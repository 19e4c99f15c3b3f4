/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulsewatch/pulsewatch/vitals"
)

// Subject represents a person whose measurements are tracked.
type Subject struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SubjectSummary represents a subject with reading counts for list views.
type SubjectSummary struct {
	Subject
	ReadingCount    int        `db:"reading_count"`
	LastReadingTime *time.Time `db:"last_reading_time"`
}

// VitalReading represents a stored measurement for a subject.
type VitalReading struct {
	ID         uuid.UUID         `db:"id"`
	SubjectID  uuid.UUID         `db:"subject_id"`
	MetricKind vitals.MetricKind `db:"metric_kind"`
	Value      float64           `db:"value"`
	TakenAt    time.Time         `db:"taken_at"`
	CreatedAt  time.Time         `db:"created_at"`
}

// Reading converts a stored row to the engine's value type.
func (r VitalReading) Reading() vitals.Reading {
	return vitals.Reading{
		Kind:      r.MetricKind,
		Value:     r.Value,
		TakenAt:   r.TakenAt,
		SubjectID: r.SubjectID,
	}
}

// MetricRange represents one row of the metric_ranges table, mirroring the
// active catalog for operator inspection.
type MetricRange struct {
	MetricKind  vitals.MetricKind `db:"metric_kind"`
	Unit        string            `db:"unit"`
	NormalMin   float64           `db:"normal_min"`
	NormalMax   float64           `db:"normal_max"`
	CriticalMin *float64          `db:"critical_min"`
	CriticalMax *float64          `db:"critical_max"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
