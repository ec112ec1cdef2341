package ioconfig

import (
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the namespace for all confmgr environment variables.
const EnvPrefix = "CONFMGR_"

// processEnv captures the variables that steer loading itself. They are
// reserved and never merged into the snapshot.
type processEnv struct {
	Profile   string `env:"CONFMGR_ENV" envDefault:"default"`
	ConfigDir string `env:"CONFMGR_CONFIG_DIR"`
}

var reservedVars = map[string]bool{
	"CONFMGR_ENV":        true,
	"CONFMGR_CONFIG_DIR": true,
}

func readProcessEnv() (*processEnv, error) {
	var pe processEnv
	if err := env.Parse(&pe); err != nil {
		return nil, ProcessEnvError(err)
	}
	return &pe, nil
}

// ActiveProfile returns the environment profile selected by CONFMGR_ENV,
// "default" when unset or empty.
func ActiveProfile() (string, error) {
	pe, err := readProcessEnv()
	if err != nil {
		return "", err
	}
	if pe.Profile == "" {
		return "default", nil
	}
	return strings.ToLower(pe.Profile), nil
}

// Override is a single key override parsed from the environment.
type Override struct {
	Path  []string
	Value any
}

// EnvOverrides extracts configuration overrides from CONFMGR_*
// variables. Double underscores separate nested keys and values are
// parsed as YAML scalars, so
//
//	CONFMGR_DATABASE_DETAILS__SAMPLE_DOMAIN__PORT=5433
//
// yields the integer 5433 at database_details.sample_domain.port.
// Overrides are returned in variable-name order so application is
// deterministic. Reserved variables (CONFMGR_ENV, CONFMGR_CONFIG_DIR)
// are never overrides.
func EnvOverrides(environ []string) []Override {
	var entries []string
	for _, kv := range environ {
		if strings.HasPrefix(kv, EnvPrefix) {
			entries = append(entries, kv)
		}
	}
	sort.Strings(entries)

	var res []Override
	for _, kv := range entries {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok || reservedVars[name] {
			continue
		}

		segments := strings.Split(strings.TrimPrefix(name, EnvPrefix), "__")
		path := make([]string, 0, len(segments))
		for _, seg := range segments {
			if seg == "" {
				path = nil
				break
			}
			path = append(path, strings.ToLower(seg))
		}
		if len(path) == 0 {
			continue
		}

		res = append(res, Override{Path: path, Value: parseScalar(raw)})
	}
	return res
}

// parseScalar interprets an environment value the way YAML would, so
// numbers and booleans keep their types. Values that fail to parse, and
// empty values, stay strings.
func parseScalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if v == nil {
		return raw
	}
	return v
}
