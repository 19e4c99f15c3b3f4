/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package vitals

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a reading value is NaN or infinite.
// Callers are expected to validate measurements before submission; the
// classifier refuses them instead of propagating undefined comparisons.
var ErrInvalidValue = errors.New("reading value must be finite")

// ErrEmptyCatalog is returned when a catalog file parses but defines no ranges.
var ErrEmptyCatalog = errors.New("catalog defines no ranges")

// IntegrityError reports a malformed entry in the range catalog. It is
// returned at registry construction time so a corrupt catalog never reaches
// the classifier.
type IntegrityError struct {
	Kind   MetricKind
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("range catalog integrity: %s: %s", e.Kind, e.Reason)
}
