// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package vitals

import (
	"errors"
	"math"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry failed: %v", err)
	}

	return registry
}

func TestClassifyTiers(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	cases := []struct {
		name  string
		kind  MetricKind
		value float64
		want  Severity
	}{
		{"heart rate inside normal band", MetricHeartRate, 75, SeverityNormal},
		{"heart rate below critical band", MetricHeartRate, 35, SeverityCritical},
		{"heart rate above critical band", MetricHeartRate, 160, SeverityCritical},
		{"heart rate between normal and critical", MetricHeartRate, 110, SeverityAbnormal},
		{"heart rate low but inside critical", MetricHeartRate, 45, SeverityAbnormal},
		{"HDL without critical band stays abnormal", MetricCholesterolHDL, 150, SeverityAbnormal},
		{"HDL low without critical band stays abnormal", MetricCholesterolHDL, 20, SeverityAbnormal},
		{"oxygen saturation emergency", MetricOxygenSaturation, 85, SeverityCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			classification, err := registry.Classify(tc.kind, tc.value)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}

			if classification.Severity != tc.want {
				t.Fatalf("Classify(%s, %v) = %s, want %s", tc.kind, tc.value, classification.Severity, tc.want)
			}

			if !classification.Recognized {
				t.Fatalf("expected cataloged kind %s to be recognized", tc.kind)
			}
		})
	}
}

func TestClassifyBoundariesAreInclusive(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	pair, ok := registry.Lookup(MetricHeartRate)
	if !ok {
		t.Fatalf("expected heart rate catalog entry")
	}

	for _, value := range []float64{pair.Normal.Min, pair.Normal.Max} {
		classification, err := registry.Classify(MetricHeartRate, value)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}

		if classification.Severity != SeverityNormal {
			t.Fatalf("expected boundary value %v to be NORMAL, got %s", value, classification.Severity)
		}
	}

	// Critical band endpoints are inside the critical band, so they are
	// abnormal (outside normal), never critical.
	classification, err := registry.Classify(MetricHeartRate, pair.Critical.Min)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if classification.Severity != SeverityAbnormal {
		t.Fatalf("expected critical band endpoint to be ABNORMAL, got %s", classification.Severity)
	}
}

func TestClassifyViolatedRange(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	pair, ok := registry.Lookup(MetricHeartRate)
	if !ok {
		t.Fatalf("expected heart rate catalog entry")
	}

	critical, err := registry.Classify(MetricHeartRate, 35)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if critical.Violated == nil || *critical.Violated != *pair.Critical {
		t.Fatalf("expected critical classification to carry the critical band, got %+v", critical.Violated)
	}

	abnormal, err := registry.Classify(MetricHeartRate, 110)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if abnormal.Violated == nil || *abnormal.Violated != pair.Normal {
		t.Fatalf("expected abnormal classification to carry the normal band, got %+v", abnormal.Violated)
	}

	normal, err := registry.Classify(MetricHeartRate, 75)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if normal.Violated != nil {
		t.Fatalf("expected no violated band for NORMAL, got %+v", normal.Violated)
	}
}

func TestClassifyUnknownKindFailsOpen(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	for _, value := range []float64{-1000, 0, 42, 1e9} {
		classification, err := registry.Classify(MetricKind("KETONE_BREATH"), value)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}

		if classification.Severity != SeverityNormal {
			t.Fatalf("expected unknown kind to classify NORMAL, got %s", classification.Severity)
		}

		if classification.Recognized {
			t.Fatalf("expected unknown kind to be marked unrecognized")
		}
	}
}

func TestClassifyRejectsNonFiniteValues(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := registry.Classify(MetricHeartRate, value); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue for %v, got %v", value, err)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	first, err := registry.Classify(MetricHeartRate, 110)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	second, err := registry.Classify(MetricHeartRate, 110)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if first.Severity != second.Severity || first.Recognized != second.Recognized {
		t.Fatalf("expected identical classifications, got %+v and %+v", first, second)
	}
}

func TestIsAbnormal(t *testing.T) {
	t.Parallel()

	registry := testRegistry(t)

	abnormal, err := registry.IsAbnormal(MetricHeartRate, 110)
	if err != nil {
		t.Fatalf("IsAbnormal failed: %v", err)
	}

	if !abnormal {
		t.Fatalf("expected 110 bpm to be abnormal")
	}

	critical, err := registry.IsAbnormal(MetricHeartRate, 35)
	if err != nil {
		t.Fatalf("IsAbnormal failed: %v", err)
	}

	if !critical {
		t.Fatalf("expected 35 bpm to be abnormal")
	}

	normal, err := registry.IsAbnormal(MetricHeartRate, 75)
	if err != nil {
		t.Fatalf("IsAbnormal failed: %v", err)
	}

	if normal {
		t.Fatalf("expected 75 bpm to be normal")
	}
}

func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	if !(SeverityNormal < SeverityAbnormal && SeverityAbnormal < SeverityCritical) {
		t.Fatalf("expected NORMAL < ABNORMAL < CRITICAL")
	}

	if SeverityCritical.String() != "CRITICAL" {
		t.Fatalf("unexpected severity name %q", SeverityCritical.String())
	}
}
