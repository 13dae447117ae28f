// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_, SERVER_, STORAGE_ and ADAPTER_ variables into cfg,
// together with the unprefixed names older deployments set (see [Legacy]).
// Every malformed variable is reported, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) {
		return fmt.Errorf("error reading environment (%d invalid values): %w", len(agg.Errors), errors.Join(agg.Errors...))
	}
	return fmt.Errorf("error reading environment: %w", err)
}
