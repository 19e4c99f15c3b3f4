/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package vitals

import (
	"errors"
	"fmt"
)

// Aggregate classifies every reading in the batch and returns the subset
// requiring clinical attention, each annotated with its severity and the
// band it violated.
//
// Output order follows input order; callers wanting severity-sorted alerts
// apply their own sort. Readings are not deduplicated: two readings of the
// same kind and value yield independent alerts. An empty batch yields an
// empty slice.
//
// A reading with a non-finite value is skipped and reported in the returned
// error (joined per item); it never suppresses alerts for the rest of the
// batch, so the alert slice is valid even when the error is non-nil.
func (r *Registry) Aggregate(readings []Reading) ([]Alert, error) {
	alerts := make([]Alert, 0, len(readings))

	var errs []error

	for i, reading := range readings {
		classification, err := r.Classify(reading.Kind, reading.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %d: %w", i, err))
			continue
		}

		if classification.Severity == SeverityNormal {
			continue
		}

		alerts = append(alerts, Alert{
			Reading:       reading,
			Severity:      classification.Severity,
			ViolatedRange: *classification.Violated,
		})
	}

	return alerts, errors.Join(errs...)
}
