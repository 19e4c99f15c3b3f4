/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pulsewatch/pulsewatch/vitals"
)

// ========== Subject Operations ==========

// ListSubjects returns all subjects with reading counts
func ListSubjects(ctx context.Context) ([]SubjectSummary, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, name, notes, created_at, updated_at, reading_count, last_reading_time
		FROM subjects_summary
		ORDER BY name ASC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []SubjectSummary
	for rows.Next() {
		var subject SubjectSummary
		err := rows.Scan(
			&subject.ID, &subject.Name, &subject.Notes,
			&subject.CreatedAt, &subject.UpdatedAt,
			&subject.ReadingCount, &subject.LastReadingTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subjects: %w", err)
	}

	return subjects, nil
}

// GetSubject returns a single subject by ID
func GetSubject(ctx context.Context, id string) (*Subject, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var subject Subject

	query := `
		SELECT id, name, notes, created_at, updated_at
		FROM subjects
		WHERE id = $1
	`

	err := pool.QueryRow(ctx, query, id).Scan(
		&subject.ID, &subject.Name, &subject.Notes,
		&subject.CreatedAt, &subject.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // Absent subjects are a caller-visible condition, not a failure.
		}

		return nil, fmt.Errorf("failed to get subject: %w", err)
	}

	return &subject, nil
}

// CreateSubject creates a new subject
func CreateSubject(ctx context.Context, name string, notes *string) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}

	var id string

	query := `
		INSERT INTO subjects (name, notes)
		VALUES ($1, $2)
		RETURNING id
	`

	err := pool.QueryRow(ctx, query, name, notes).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create subject: %w", err)
	}

	return id, nil
}

// DeleteSubject deletes a subject (cascades to readings)
func DeleteSubject(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `DELETE FROM subjects WHERE id = $1`

	_, err := pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	return nil
}

// ========== Reading Operations ==========

// CreateReadingInput represents input for storing a reading
type CreateReadingInput struct {
	SubjectID  string
	MetricKind vitals.MetricKind
	Value      float64
	TakenAt    time.Time
}

// CreateReading stores a single reading for a subject
func CreateReading(ctx context.Context, input CreateReadingInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}

	var id string

	query := `
		INSERT INTO vital_readings (subject_id, metric_kind, value, taken_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := pool.QueryRow(ctx, query,
		input.SubjectID, input.MetricKind, input.Value, input.TakenAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create reading: %w", err)
	}

	return id, nil
}

// ListReadings returns readings for a subject in submission order, optionally
// filtered by metric kind. A zero limit returns all readings.
func ListReadings(ctx context.Context, subjectID string, kind vitals.MetricKind, limit int) ([]VitalReading, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, subject_id, metric_kind, value, taken_at, created_at
		FROM vital_readings
		WHERE subject_id = $1 AND ($2 = '' OR metric_kind = $2)
		ORDER BY taken_at ASC, created_at ASC
	`

	args := []any{subjectID, string(kind)}

	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	defer rows.Close()

	var readings []VitalReading
	for rows.Next() {
		var reading VitalReading
		err := rows.Scan(
			&reading.ID, &reading.SubjectID, &reading.MetricKind,
			&reading.Value, &reading.TakenAt, &reading.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating readings: %w", err)
	}

	return readings, nil
}

// DeleteReading deletes a single reading
func DeleteReading(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `DELETE FROM vital_readings WHERE id = $1`

	_, err := pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reading: %w", err)
	}

	return nil
}
