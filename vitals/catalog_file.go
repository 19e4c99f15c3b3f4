/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package vitals

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the declarative YAML form of the range catalog, so clinical
// reference ranges can be updated without touching classification logic:
//
//	ranges:
//	  - kind: HEART_RATE
//	    unit: bpm
//	    normal_min: 60
//	    normal_max: 100
//	    critical_min: 40
//	    critical_max: 150
type CatalogFile struct {
	Ranges []RangeDefinition `yaml:"ranges"`
}

// LoadDefinitions reads an authored catalog from a YAML file.
func LoadDefinitions(path string) ([]RangeDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if len(file.Ranges) == 0 {
		return nil, fmt.Errorf("catalog file %s: %w", path, ErrEmptyCatalog)
	}

	return file.Ranges, nil
}

// LoadRegistry builds a validated registry from a YAML catalog file.
func LoadRegistry(path string) (*Registry, error) {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return nil, err
	}

	return NewRegistry(defs)
}
