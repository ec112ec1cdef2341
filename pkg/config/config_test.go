package config_test

import (
	"testing"

	"github.com/samiksha22122/ConfigManager/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() map[string]any {
	return map[string]any{
		"cloud_details": map[string]any{
			"sample_domain": map[string]any{
				"provider": "aws",
				"region":   "us-east-1",
			},
		},
		"database_details": map[string]any{
			"sample_domain": map[string]any{
				"port": 5432,
				"host": "db.internal",
			},
		},
		"model_type": "gpt-like",
		"features": map[string]any{
			"enable_feature_x": true,
		},
		"cloud_secrets": map[string]any{
			"sample_domain": map[string]any{
				"api_key": "sk-1234567890abcdef",
			},
		},
	}
}

func TestNew(t *testing.T) {
	cfg := config.New("production", sampleData(), nil)

	assert.Equal(t, "production", cfg.Profile())
	assert.NotNil(t, cfg.All())
	assert.True(t, cfg.Has("model_type"))
	assert.False(t, cfg.Has("no_such_key"))
}

func TestNew_NilData(t *testing.T) {
	cfg := config.New("default", nil, nil)

	require.NotNil(t, cfg.All())
	assert.Empty(t, cfg.All())
	assert.False(t, cfg.Has("model_type"))
}

func TestLookup(t *testing.T) {
	cfg := config.New("default", sampleData(), nil)

	tests := []struct {
		msg  string
		path string
		val  any
		ok   bool
	}{
		{"top level", "model_type", "gpt-like", true},
		{"nested", "cloud_details.sample_domain.provider", "aws", true},
		{"deep int", "database_details.sample_domain.port", 5432, true},
		{"mapping value", "features.enable_feature_x", true, true},
		{"absent top level", "nope", nil, false},
		{"absent leaf", "cloud_details.sample_domain.zone", nil, false},
		{"absent domain", "cloud_details.ghost_domain.provider", nil, false},
		{"descent through scalar", "model_type.sub", nil, false},
		{"empty path", "", nil, false},
	}

	for _, v := range tests {
		val, ok := cfg.Lookup(v.path)
		assert.Equal(t, v.ok, ok, v.msg)
		if v.ok {
			assert.Equal(t, v.val, val, v.msg)
		}
	}
}

func TestStringAt(t *testing.T) {
	cfg := config.New("default", sampleData(), nil)

	tests := []struct {
		msg  string
		path string
		val  string
		ok   bool
	}{
		{"string value", "model_type", "gpt-like", true},
		{"nested string", "cloud_details.sample_domain.provider", "aws", true},
		{"integer is not a string", "database_details.sample_domain.port", "", false},
		{"boolean is not a string", "features.enable_feature_x", "", false},
		{"mapping is not a string", "features", "", false},
		{"absent path", "no.such.path", "", false},
	}

	for _, v := range tests {
		val, ok := cfg.StringAt(v.path)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.val, val, v.msg)
	}
}

func TestIntAt(t *testing.T) {
	data := sampleData()
	data["big"] = int64(1 << 40)
	data["float"] = 54.32
	data["numeric_string"] = "5432"
	cfg := config.New("default", data, nil)

	tests := []struct {
		msg  string
		path string
		val  int
		ok   bool
	}{
		{"int value", "database_details.sample_domain.port", 5432, true},
		{"int64 value", "big", 1 << 40, true},
		{"float is not an integer", "float", 0, false},
		{"numeric string is not an integer", "numeric_string", 0, false},
		{"boolean is not an integer", "features.enable_feature_x", 0, false},
		{"absent path", "database_details.ghost_domain.port", 0, false},
	}

	for _, v := range tests {
		val, ok := cfg.IntAt(v.path)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.val, val, v.msg)
	}
}

func TestBoolAt(t *testing.T) {
	cfg := config.New("default", sampleData(), nil)

	tests := []struct {
		msg  string
		path string
		val  bool
		ok   bool
	}{
		{"bool value", "features.enable_feature_x", true, true},
		{"string is not a bool", "model_type", false, false},
		{"integer is not a bool", "database_details.sample_domain.port", false, false},
		{"absent path", "features.enable_feature_y", false, false},
	}

	for _, v := range tests {
		val, ok := cfg.BoolAt(v.path)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.val, val, v.msg)
	}
}

func TestMapAt(t *testing.T) {
	cfg := config.New("default", sampleData(), nil)

	m, ok := cfg.MapAt("cloud_details")
	require.True(t, ok)
	assert.Contains(t, m, "sample_domain")

	_, ok = cfg.MapAt("model_type")
	assert.False(t, ok, "scalar is not a mapping")

	_, ok = cfg.MapAt("no_such_section")
	assert.False(t, ok)
}

func TestDomainKeys(t *testing.T) {
	data := sampleData()
	dbs := data["database_details"].(map[string]any)
	dbs["extra_domain"] = map[string]any{"port": 5433}
	dbs["another_domain"] = map[string]any{"port": 5434}
	cfg := config.New("default", data, nil)

	keys := cfg.DomainKeys("database_details")
	assert.Equal(
		t,
		[]string{"another_domain", "extra_domain", "sample_domain"},
		keys,
		"keys should be sorted",
	)

	assert.Nil(t, cfg.DomainKeys("no_such_section"))
	assert.Nil(t, cfg.DomainKeys("model_type"), "scalar section has no domains")
}

func TestSource(t *testing.T) {
	sources := []config.Source{
		{Name: "cloud", Path: "/etc/confmgr/cloud.yaml", Exists: true, Size: 120},
		{Name: "secrets", Path: "/etc/confmgr/secrets.yaml", Exists: false},
	}
	cfg := config.New("default", sampleData(), sources)

	assert.Len(t, cfg.Sources(), 2)

	src, ok := cfg.Source("secrets")
	require.True(t, ok)
	assert.False(t, src.Exists)
	assert.Equal(t, "/etc/confmgr/secrets.yaml", src.Path)

	_, ok = cfg.Source("app")
	assert.False(t, ok)
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		msg string
		val any
		res string
	}{
		{"nil", nil, "null"},
		{"string", "aws", "string"},
		{"bool", true, "boolean"},
		{"int", 5432, "integer"},
		{"int64", int64(9), "integer"},
		{"float", 3.14, "float"},
		{"mapping", map[string]any{}, "mapping"},
		{"list", []any{1, 2}, "list"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, config.TypeName(v.val), v.msg)
	}
}

func TestLogConfig(t *testing.T) {
	tests := []struct {
		msg    string
		data   map[string]any
		level  string
		format string
	}{
		{
			msg:    "defaults when keys absent",
			data:   map[string]any{},
			level:  "info",
			format: "text",
		},
		{
			msg: "explicit values",
			data: map[string]any{
				"log_level":  "debug",
				"log_format": "json",
			},
			level:  "debug",
			format: "json",
		},
		{
			msg: "non-string values fall back to defaults",
			data: map[string]any{
				"log_level":  42,
				"log_format": true,
			},
			level:  "info",
			format: "text",
		},
	}

	for _, v := range tests {
		lc := config.New("default", v.data, nil).LogConfig()
		assert.Equal(t, v.level, lc.Level, v.msg)
		assert.Equal(t, v.format, lc.Format, v.msg)
	}
}

func TestFingerprint(t *testing.T) {
	cfg1 := config.New("default", sampleData(), nil)
	cfg2 := config.New("default", sampleData(), nil)

	assert.Equal(t, cfg1.Fingerprint(), cfg2.Fingerprint(),
		"identical content must share a fingerprint")
	assert.Equal(t, cfg1.Fingerprint(), cfg1.Fingerprint(),
		"fingerprint must be stable between calls")

	changed := sampleData()
	changed["model_type"] = "bert-like"
	cfg3 := config.New("default", changed, nil)
	assert.NotEqual(t, cfg1.Fingerprint(), cfg3.Fingerprint())
}
