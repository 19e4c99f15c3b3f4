// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pulsewatch/pulsewatch/vitals"
)

func TestVitalReadingConversion(t *testing.T) {
	t.Parallel()

	subjectID := uuid.New()
	takenAt := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

	row := VitalReading{
		ID:         uuid.New(),
		SubjectID:  subjectID,
		MetricKind: vitals.MetricHeartRate,
		Value:      110,
		TakenAt:    takenAt,
	}

	reading := row.Reading()

	if reading.Kind != vitals.MetricHeartRate {
		t.Fatalf("expected kind %s, got %s", vitals.MetricHeartRate, reading.Kind)
	}

	if reading.Value != 110 {
		t.Fatalf("expected value 110, got %v", reading.Value)
	}

	if reading.SubjectID != subjectID {
		t.Fatalf("expected subject ID to carry over")
	}

	if !reading.TakenAt.Equal(takenAt) {
		t.Fatalf("expected taken_at %v, got %v", takenAt, reading.TakenAt)
	}
}

func TestOperationsRequireInitializedPool(t *testing.T) {
	t.Parallel()

	if pool != nil {
		t.Skip("pool initialized; sentinel checks only apply without a connection")
	}

	ctx := context.Background()

	if _, err := ListSubjects(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}

	if _, err := CreateReading(ctx, CreateReadingInput{}); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}

	if err := DeleteReading(ctx, uuid.NewString()); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}

	if _, err := GetMetricRange(ctx, vitals.MetricHeartRate); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}

	if _, err := ListMetricRanges(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}

	registry, err := vitals.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry failed: %v", err)
	}

	if err := SyncMetricRanges(ctx, registry); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}
}
