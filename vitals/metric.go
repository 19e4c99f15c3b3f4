/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package vitals classifies physiological measurements against clinical
// reference ranges and aggregates abnormal readings into alerts.
package vitals

import (
	"time"

	"github.com/google/uuid"
)

// MetricKind identifies a class of physiological measurement. The set of
// kinds is closed; the registry catalog is the authoritative list.
type MetricKind string

// MetricKind values represent the supported measurement classes.
const (
	MetricHeartRate              MetricKind = "HEART_RATE"
	MetricBloodPressureSystolic  MetricKind = "BLOOD_PRESSURE_SYSTOLIC"
	MetricBloodPressureDiastolic MetricKind = "BLOOD_PRESSURE_DIASTOLIC"
	MetricBodyTemperature        MetricKind = "BODY_TEMPERATURE"
	MetricRespiratoryRate        MetricKind = "RESPIRATORY_RATE"
	MetricOxygenSaturation       MetricKind = "OXYGEN_SATURATION"
	MetricGlucoseFasting         MetricKind = "GLUCOSE_FASTING"
	MetricHbA1c                  MetricKind = "HBA1C"
	MetricCholesterolHDL         MetricKind = "CHOLESTEROL_HDL"
	MetricCholesterolLDL         MetricKind = "CHOLESTEROL_LDL"
	MetricTriglycerides          MetricKind = "TRIGLYCERIDES"
	MetricBodyMassIndex          MetricKind = "BODY_MASS_INDEX"
)

// Severity is the three-tier classification outcome. The zero value is
// SeverityNormal, and the tiers are totally ordered by their numeric value.
type Severity int

// Severity tiers, from least to most concerning.
const (
	SeverityNormal Severity = iota
	SeverityAbnormal
	SeverityCritical
)

// String returns the wire/display name of the severity tier.
func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "NORMAL"
	case SeverityAbnormal:
		return "ABNORMAL"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their tier names in JSON responses.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Range is an inclusive numeric band. Both endpoints belong to the band.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies inside the band, endpoints included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// RangePair holds the bands associated with one metric kind. Critical is nil
// for kinds without a clinically settled emergency band; values outside the
// normal band of such kinds are at most abnormal.
type RangePair struct {
	Normal   Range  `json:"normal"`
	Critical *Range `json:"critical,omitempty"`
}

// Reading is a single measurement supplied by the caller. It is a plain
// value; the engine never mutates it.
type Reading struct {
	Kind      MetricKind `json:"kind"`
	Value     float64    `json:"value"`
	TakenAt   time.Time  `json:"taken_at,omitzero"`
	SubjectID uuid.UUID  `json:"subject_id,omitzero"`
}

// Alert pairs a non-normal reading with the band it violated. Alerts are
// transient values derived on demand; they carry no identity of their own.
type Alert struct {
	Reading       Reading  `json:"reading"`
	Severity      Severity `json:"severity"`
	ViolatedRange Range    `json:"violated_range"`
}
