// Package config provides configuration loading from environment variables.
package config

import (
	"time"
)

// Environment variables read by the test harness.
const (
	EnvJobTimeout             = "CHIA_TEST_JOB_TIMEOUT"
	EnvCheckoutBlocksAndPlots = "CHIA_TEST_CHECKOUT_BLOCKS_AND_PLOTS"
)

// Defaults applied when a harness variable is unset or unparseable.
const (
	DefaultJobTimeout             = 70
	DefaultCheckoutBlocksAndPlots = true
)

// Source identifies where a resolved value came from.
type Source string

const (
	SourceEnv     Source = "env"
	SourceDefault Source = "default"
)

// HarnessConfig holds the resolved test harness configuration.
// It is built once at startup and passed to whatever needs it.
type HarnessConfig struct {
	JobTimeoutSeconds      int  `json:"job_timeout_seconds"`
	CheckoutBlocksAndPlots bool `json:"checkout_blocks_and_plots"`

	sources map[string]Source
}

// LoadHarnessConfig loads the harness configuration from environment variables.
func LoadHarnessConfig() HarnessConfig {
	return HarnessConfig{
		JobTimeoutSeconds:      GetIntEnv(EnvJobTimeout, DefaultJobTimeout),
		CheckoutBlocksAndPlots: GetBoolEnv(EnvCheckoutBlocksAndPlots, DefaultCheckoutBlocksAndPlots),
		sources: map[string]Source{
			EnvJobTimeout:             sourceOf(EnvJobTimeout),
			EnvCheckoutBlocksAndPlots: sourceOf(EnvCheckoutBlocksAndPlots),
		},
	}
}

// JobTimeout returns the job timeout as a duration.
func (c HarnessConfig) JobTimeout() time.Duration {
	return time.Duration(c.JobTimeoutSeconds) * time.Second
}

// Sources reports, per variable name, whether the variable was present in
// the environment when the config was loaded. A present but malformed
// integer still reports SourceEnv even though the default was used.
func (c HarnessConfig) Sources() map[string]Source {
	out := make(map[string]Source, 2)
	for _, name := range []string{EnvJobTimeout, EnvCheckoutBlocksAndPlots} {
		src, ok := c.sources[name]
		if !ok {
			src = SourceDefault
		}
		out[name] = src
	}
	return out
}

func sourceOf(key string) Source {
	if isSet(key) {
		return SourceEnv
	}
	return SourceDefault
}
