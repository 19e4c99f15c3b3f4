/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulsewatch/pulsewatch/vitals"
)

// SyncMetricRanges synchronizes the active range catalog to the database.
// This is called on application startup so operators can inspect the bands
// the classifier is using with plain SQL. The in-memory registry remains the
// source of truth for classification.
func SyncMetricRanges(ctx context.Context, registry *vitals.Registry) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	definitions := registry.Definitions()
	logger.Infof("Syncing %d metric range definitions to database...", len(definitions))

	// Use UPSERT (INSERT ... ON CONFLICT DO UPDATE) for each range
	query := `
		INSERT INTO metric_ranges (metric_kind, unit, normal_min, normal_max, critical_min, critical_max)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (metric_kind)
		DO UPDATE SET
			unit = EXCLUDED.unit,
			normal_min = EXCLUDED.normal_min,
			normal_max = EXCLUDED.normal_max,
			critical_min = EXCLUDED.critical_min,
			critical_max = EXCLUDED.critical_max,
			updated_at = now()
	`

	syncCount := 0

	for _, def := range definitions {
		_, err := pool.Exec(ctx, query,
			def.Kind, def.Unit,
			def.NormalMin, def.NormalMax,
			def.CriticalMin, def.CriticalMax,
		)
		if err != nil {
			return fmt.Errorf("failed to sync metric range for %s: %w", def.Kind, err)
		}

		syncCount++
	}

	logger.Infof("Successfully synced %d metric ranges", syncCount)

	return nil
}

// GetMetricRange retrieves the stored range row for a metric kind.
func GetMetricRange(ctx context.Context, kind vitals.MetricKind) (*MetricRange, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var mr MetricRange

	query := `
		SELECT metric_kind, unit, normal_min, normal_max, critical_min, critical_max, updated_at
		FROM metric_ranges
		WHERE metric_kind = $1
	`

	err := pool.QueryRow(ctx, query, kind).Scan(
		&mr.MetricKind, &mr.Unit,
		&mr.NormalMin, &mr.NormalMax,
		&mr.CriticalMin, &mr.CriticalMax,
		&mr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing ranges are expected for uncataloged kinds.
			return nil, nil //nolint:nilnil
		}

		return nil, fmt.Errorf("failed to get metric range: %w", err)
	}

	return &mr, nil
}

// ListMetricRanges returns all stored range rows ordered by metric kind.
func ListMetricRanges(ctx context.Context) ([]MetricRange, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT metric_kind, unit, normal_min, normal_max, critical_min, critical_max, updated_at
		FROM metric_ranges
		ORDER BY metric_kind ASC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list metric ranges: %w", err)
	}
	defer rows.Close()

	var ranges []MetricRange
	for rows.Next() {
		var mr MetricRange
		err := rows.Scan(
			&mr.MetricKind, &mr.Unit,
			&mr.NormalMin, &mr.NormalMax,
			&mr.CriticalMin, &mr.CriticalMax,
			&mr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metric range: %w", err)
		}
		ranges = append(ranges, mr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metric ranges: %w", err)
	}

	return ranges, nil
}
