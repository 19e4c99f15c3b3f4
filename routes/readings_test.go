// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"encoding/json"
	"testing"

	"github.com/pulsewatch/pulsewatch/vitals"
)

func TestReadingResultErroredSlotCarriesNoSeverity(t *testing.T) {
	result := readingResult{
		Index: 0,
		Kind:  vitals.MetricHeartRate,
		Value: 75,
		Error: "value must be finite",
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}

	if _, ok := fields["severity"]; ok {
		t.Fatalf("expected no severity field on errored slot, got %s", data)
	}

	if _, ok := fields["error"]; !ok {
		t.Fatalf("expected error field on errored slot, got %s", data)
	}
}

func TestReadingResultClassifiedSlotCarriesTierName(t *testing.T) {
	severity := vitals.SeverityCritical
	result := readingResult{
		Index:      1,
		ID:         "0b6f3c2e-9a41-4a6b-8f3e-0f0e8e2d6c71",
		Kind:       vitals.MetricHeartRate,
		Value:      35,
		Severity:   &severity,
		Recognized: true,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var decoded struct {
		Severity string `json:"severity"`
	}

	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}

	if decoded.Severity != "CRITICAL" {
		t.Fatalf("expected severity CRITICAL, got %q", decoded.Severity)
	}
}
