package config

import (
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RADAR_"

// applyEnv overlays RADAR_* variables on cfg. Unparsable numbers are ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix + "SOLVERS"); ok && v != "" {
		cfg.Solvers = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "TIME_LIMIT"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.TimeLimit = f
		}
	}
	if v, ok := lookup(EnvPrefix + "OUTPUT_DIR"); ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := lookup(EnvPrefix + "FORMATS"); ok && v != "" {
		cfg.Formats = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "SUGGESTED_MAX"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SuggestedMax = n
		}
	}
	if v, ok := lookup(EnvPrefix + "LISTEN_ADDR"); ok && v != "" {
		cfg.ListenAddr = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
