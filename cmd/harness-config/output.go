package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"harness/internal/config"
)

// Output formats
const (
	formatEnv  = "env"
	formatJSON = "json"
)

// writeConfig renders cfg to w in the requested format.
func writeConfig(w io.Writer, cfg config.HarnessConfig, format string) error {
	switch format {
	case formatEnv:
		_, err := fmt.Fprintf(w, "%s=%d\n%s=%s\n",
			config.EnvJobTimeout, cfg.JobTimeoutSeconds,
			config.EnvCheckoutBlocksAndPlots, strconv.FormatBool(cfg.CheckoutBlocksAndPlots),
		)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatEnv, formatJSON)
	}
}
