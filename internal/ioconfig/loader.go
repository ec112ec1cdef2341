// Package ioconfig loads and merges the layered configuration documents.
// This is an impure package that handles file system and environment
// operations.
package ioconfig

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/samiksha22122/ConfigManager/pkg/config"
	"github.com/spf13/viper"
)

// DocumentNames lists the layered documents in merge order. Later
// documents override earlier ones for the same key; environment
// overrides apply after all of them.
var DocumentNames = []string{"cloud", "app", "database", "secrets"}

// LoadResult contains the loaded snapshot and metadata about the source.
type LoadResult struct {
	Config *config.Config
	Dir    string // configuration directory used
	Source string // "files", "files+env", "env", or "none"
}

// Load reads the layer documents from dir, overlays the active profile's
// sections, applies CONFMGR_* environment overrides and returns the
// merged snapshot. An empty dir falls back to GetConfigDir, an empty
// profile to ActiveProfile.
//
// Absent documents are skipped and recorded with Exists=false; the
// validator, not the loader, reports their consequences. Malformed
// documents are hard errors.
func Load(dir, profile string) (*LoadResult, error) {
	var err error
	if dir == "" {
		dir, err = GetConfigDir()
		if err != nil {
			return nil, err
		}
	}
	if profile == "" {
		profile, err = ActiveProfile()
		if err != nil {
			return nil, err
		}
	}
	profile = strings.ToLower(profile)

	merged := map[string]any{}
	sources := make([]config.Source, 0, len(DocumentNames))
	filesRead := 0

	for _, name := range DocumentNames {
		path := DocumentPath(dir, name)
		src := config.Source{Name: name, Path: path}

		fi, statErr := os.Stat(path)
		if statErr != nil {
			sources = append(sources, src)
			continue
		}
		src.Exists = true
		src.Size = fi.Size()
		sources = append(sources, src)

		doc, err := readDocument(path)
		if err != nil {
			return nil, err
		}

		for _, layer := range profileLayers(doc, profile) {
			if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
				return nil, MergeConfigError(path, err)
			}
		}
		filesRead++
	}

	overrides := EnvOverrides(os.Environ())
	for _, ov := range overrides {
		setPath(merged, ov.Path, ov.Value)
	}

	source := "none"
	switch {
	case filesRead > 0 && len(overrides) > 0:
		source = "files+env"
	case filesRead > 0:
		source = "files"
	case len(overrides) > 0:
		source = "env"
	}

	slog.Debug("merged configuration documents",
		"dir", dir,
		"profile", profile,
		"documents", filesRead,
		"env_overrides", len(overrides),
	)

	return &LoadResult{
		Config: config.New(profile, merged, sources),
		Dir:    dir,
		Source: source,
	}, nil
}

// readDocument parses one YAML document into a mapping. Viper normalizes
// all keys to lower case, which keeps documents and CONFMGR_* overrides
// case-insensitive the same way.
func readDocument(path string) (map[string]any, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, ParseFileError(path, err)
		}
		return nil, ReadFileError(path, err)
	}
	return v.AllSettings(), nil
}

// profileLayers returns the mapping layers one document contributes, in
// application order. A document with profile sections contributes its
// "default" section followed by the active profile's section and nothing
// else; a document without either section applies as-is to every
// profile.
func profileLayers(doc map[string]any, profile string) []map[string]any {
	def, hasDef := doc["default"].(map[string]any)
	prof, hasProf := doc[profile].(map[string]any)

	if !hasDef && !hasProf {
		return []map[string]any{doc}
	}

	var layers []map[string]any
	if hasDef {
		layers = append(layers, def)
	}
	if hasProf && profile != "default" {
		layers = append(layers, prof)
	}
	return layers
}

// setPath writes a value at a nested path, creating intermediate
// mappings and replacing scalars that stand in the way.
func setPath(m map[string]any, path []string, val any) {
	for i, key := range path {
		if i == len(path)-1 {
			m[key] = val
			return
		}
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
}
