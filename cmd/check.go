/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/pulsewatch/pulsewatch/vitals"
)

var CmdCheck = &cli.Command{
	Name:      "check",
	Usage:     "Classify a YAML file of readings without a database",
	ArgsUsage: "<readings.yaml>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "ranges",
			Sources: cli.EnvVars("PULSEWATCH_RANGES"),
			Usage:   "path to a YAML range catalog (defaults to the built-in catalog)",
		},
	},
	Action: check,
}

// checkReading is one measurement in the readings file.
type checkReading struct {
	Kind  vitals.MetricKind `yaml:"kind"`
	Value float64           `yaml:"value"`
}

type checkFile struct {
	Readings []checkReading `yaml:"readings"`
}

func loadReadings(path string) ([]vitals.Reading, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read readings file: %w", err)
	}

	var file checkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse readings file: %w", err)
	}

	readings := make([]vitals.Reading, 0, len(file.Readings))
	for _, reading := range file.Readings {
		readings = append(readings, vitals.Reading{
			Kind:  reading.Kind,
			Value: reading.Value,
		})
	}

	return readings, nil
}

func check(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 1 {
		return errReadingsFileRequired
	}

	registry, err := loadRegistry(cmd.String("ranges"))
	if err != nil {
		return fmt.Errorf("failed to load range catalog: %w", err)
	}

	readings, err := loadReadings(args.First())
	if err != nil {
		return err
	}

	alerts, err := registry.Aggregate(readings)
	if err != nil {
		// Invalid readings are reported but never suppress the alerts of
		// valid ones.
		appLogger.Warn("Some readings could not be evaluated", "error", err)
	}

	criticalCount := 0

	for _, alert := range alerts {
		if alert.Severity == vitals.SeverityCritical {
			criticalCount++
		}

		appLogger.Warn("Reading outside normal range",
			"kind", alert.Reading.Kind,
			"value", alert.Reading.Value,
			"severity", alert.Severity,
			"range_min", alert.ViolatedRange.Min,
			"range_max", alert.ViolatedRange.Max,
		)
	}

	appLogger.Info("Evaluation complete",
		"readings", len(readings),
		"alerts", len(alerts),
		"critical", criticalCount,
	)

	if criticalCount > 0 {
		return errCriticalAlertsFound
	}

	return nil
}
