/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package vitals

import (
	"sort"
)

// RangeDefinition represents one authored catalog entry for a metric kind.
// CriticalMin/CriticalMax are nil for kinds without a settled emergency
// band; such kinds classify to at most ABNORMAL.
type RangeDefinition struct {
	Kind        MetricKind `yaml:"kind"`
	Unit        string     `yaml:"unit"`
	NormalMin   float64    `yaml:"normal_min"`
	NormalMax   float64    `yaml:"normal_max"`
	CriticalMin *float64   `yaml:"critical_min,omitempty"`
	CriticalMax *float64   `yaml:"critical_max,omitempty"`
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// DefaultDefinitions returns the built-in range catalog.
// This is the authoritative source of truth for classification bands; an
// operator-supplied YAML catalog may replace it at startup.
func DefaultDefinitions() []RangeDefinition {
	return []RangeDefinition{
		// ===== VITAL SIGNS =====
		{
			Kind: MetricHeartRate, Unit: "bpm",
			NormalMin: 60, NormalMax: 100,
			CriticalMin: ptr(40), CriticalMax: ptr(150),
		},
		{
			Kind: MetricBloodPressureSystolic, Unit: "mmHg",
			NormalMin: 90, NormalMax: 120,
			CriticalMin: ptr(70), CriticalMax: ptr(180),
		},
		{
			Kind: MetricBloodPressureDiastolic, Unit: "mmHg",
			NormalMin: 60, NormalMax: 80,
			CriticalMin: ptr(40), CriticalMax: ptr(120),
		},
		{
			Kind: MetricBodyTemperature, Unit: "°C",
			NormalMin: 36.1, NormalMax: 37.2,
			CriticalMin: ptr(35.0), CriticalMax: ptr(40.0),
		},
		{
			Kind: MetricRespiratoryRate, Unit: "breaths/min",
			NormalMin: 12, NormalMax: 20,
			CriticalMin: ptr(8), CriticalMax: ptr(30),
		},
		{
			Kind: MetricOxygenSaturation, Unit: "%",
			NormalMin: 95, NormalMax: 100,
			CriticalMin: ptr(88), CriticalMax: ptr(100), // Below 88% is an emergency
		},

		// ===== METABOLIC =====
		{
			Kind: MetricGlucoseFasting, Unit: "mg/dL",
			NormalMin: 70, NormalMax: 99,
			CriticalMin: ptr(54), CriticalMax: ptr(250), // <54 severe hypoglycemia
		},
		{
			Kind: MetricHbA1c, Unit: "%",
			NormalMin: 4.0, NormalMax: 5.6,
			CriticalMin: nil, CriticalMax: nil, // Chronic marker, no emergency band
		},

		// ===== LIPID PANEL =====
		// No critical bands: lipid values are long-horizon risk markers, not
		// emergencies. Pending confirmation with domain owners.
		{
			Kind: MetricCholesterolHDL, Unit: "mg/dL",
			NormalMin: 40, NormalMax: 100,
			CriticalMin: nil, CriticalMax: nil,
		},
		{
			Kind: MetricCholesterolLDL, Unit: "mg/dL",
			NormalMin: 0, NormalMax: 100,
			CriticalMin: nil, CriticalMax: nil,
		},
		{
			Kind: MetricTriglycerides, Unit: "mg/dL",
			NormalMin: 0, NormalMax: 150,
			CriticalMin: nil, CriticalMax: nil,
		},

		// ===== BODY COMPOSITION =====
		{
			Kind: MetricBodyMassIndex, Unit: "kg/m²",
			NormalMin: 18.5, NormalMax: 24.9,
			CriticalMin: nil, CriticalMax: nil,
		},
	}
}

// Registry is the immutable catalog mapping metric kinds to their bands.
// It is constructed once at startup and is read-only afterwards, so it is
// safe for concurrent use without locking.
type Registry struct {
	ranges map[MetricKind]RangePair
	defs   []RangeDefinition
}

// NewRegistry builds a registry from authored definitions, validating each
// entry. Band containment (critical.min ≤ normal.min ≤ normal.max ≤
// critical.max) is a correctness precondition for the classifier, so a
// catalog violating it is rejected with an IntegrityError.
func NewRegistry(defs []RangeDefinition) (*Registry, error) {
	ranges := make(map[MetricKind]RangePair, len(defs))

	for _, def := range defs {
		if def.Kind == "" {
			return nil, &IntegrityError{Kind: def.Kind, Reason: "missing metric kind"}
		}

		if _, exists := ranges[def.Kind]; exists {
			return nil, &IntegrityError{Kind: def.Kind, Reason: "duplicate catalog entry"}
		}

		if def.NormalMin > def.NormalMax {
			return nil, &IntegrityError{Kind: def.Kind, Reason: "normal band min exceeds max"}
		}

		pair := RangePair{Normal: Range{Min: def.NormalMin, Max: def.NormalMax}}

		if (def.CriticalMin == nil) != (def.CriticalMax == nil) {
			return nil, &IntegrityError{Kind: def.Kind, Reason: "critical band must define both min and max"}
		}

		if def.CriticalMin != nil {
			critical := Range{Min: *def.CriticalMin, Max: *def.CriticalMax}
			if critical.Min > critical.Max {
				return nil, &IntegrityError{Kind: def.Kind, Reason: "critical band min exceeds max"}
			}
			if critical.Min > pair.Normal.Min || critical.Max < pair.Normal.Max {
				return nil, &IntegrityError{Kind: def.Kind, Reason: "critical band does not contain normal band"}
			}
			pair.Critical = &critical
		}

		ranges[def.Kind] = pair
	}

	registry := &Registry{
		ranges: ranges,
		defs:   make([]RangeDefinition, len(defs)),
	}
	copy(registry.defs, defs)

	return registry, nil
}

// NewDefaultRegistry builds a registry from the built-in catalog.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultDefinitions())
}

// Lookup returns the band pair for a known kind. The boolean is false for
// kinds absent from the catalog; absence is not an error, and the classifier
// treats such kinds as NORMAL by policy.
func (r *Registry) Lookup(kind MetricKind) (RangePair, bool) {
	pair, ok := r.ranges[kind]
	return pair, ok
}

// Kinds returns the cataloged metric kinds in lexical order.
func (r *Registry) Kinds() []MetricKind {
	kinds := make([]MetricKind, 0, len(r.ranges))
	for kind := range r.ranges {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// Definitions returns a copy of the authored catalog entries, in their
// original order.
func (r *Registry) Definitions() []RangeDefinition {
	defs := make([]RangeDefinition, len(r.defs))
	copy(defs, r.defs)

	return defs
}
