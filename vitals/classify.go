/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package vitals

import (
	"fmt"
	"math"
)

// Classification is the outcome of evaluating one value against the catalog.
type Classification struct {
	Severity Severity `json:"severity"`

	// Recognized is false when the metric kind is absent from the catalog.
	// Such values classify as NORMAL (fail-open), but callers can use this
	// flag to warn operators about data-quality issues.
	Recognized bool `json:"recognized"`

	// Violated is the band responsible for a non-normal severity: the
	// critical band when it triggered, otherwise the normal band. Nil for
	// NORMAL classifications.
	Violated *Range `json:"violated,omitempty"`
}

// Classify evaluates a single value against the catalog bands for kind.
//
// The critical band is checked before the normal band so that critical
// status strictly dominates: a value outside both bands is reported once,
// as CRITICAL. Band endpoints are inclusive. NaN and ±Inf are rejected with
// ErrInvalidValue.
func (r *Registry) Classify(kind MetricKind, value float64) (Classification, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Classification{}, fmt.Errorf("classify %s: value %v: %w", kind, value, ErrInvalidValue)
	}

	pair, ok := r.ranges[kind]
	if !ok {
		// No reference data exists to judge the value, so it is never
		// flagged. Recognized stays false.
		return Classification{Severity: SeverityNormal}, nil
	}

	if pair.Critical != nil && !pair.Critical.Contains(value) {
		violated := *pair.Critical
		return Classification{Severity: SeverityCritical, Recognized: true, Violated: &violated}, nil
	}

	if !pair.Normal.Contains(value) {
		violated := pair.Normal
		return Classification{Severity: SeverityAbnormal, Recognized: true, Violated: &violated}, nil
	}

	return Classification{Severity: SeverityNormal, Recognized: true}, nil
}

// IsAbnormal reports whether the value classifies as ABNORMAL or CRITICAL.
func (r *Registry) IsAbnormal(kind MetricKind, value float64) (bool, error) {
	classification, err := r.Classify(kind, value)
	if err != nil {
		return false, err
	}

	return classification.Severity >= SeverityAbnormal, nil
}
