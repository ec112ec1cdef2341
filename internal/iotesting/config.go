// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	// TestDomain is the deployment domain used by the valid fixture
	// documents.
	TestDomain = "sample_domain"

	// TestAPIKey is a key that satisfies every secret check: not a
	// placeholder, not empty, longer than the minimum length.
	TestAPIKey = "sk-1234567890abcdef"
)

// SetupTempConfigDir creates a temporary config directory for a test and
// sets the CONFMGR_CONFIG_DIR environment variable to point to it. Both are
// cleaned up automatically when the test finishes.
//
// This prevents tests from accidentally reading production config documents
// in ~/.config/confmgr/. All tests that load or write config documents
// should use this function.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    dir := iotesting.SetupTempConfigDir(t)
//	    iotesting.WriteValidDocuments(t, dir)
//	    // ioconfig.Load("", "") now reads from dir
//	}
//
// Returns the absolute path to the temporary config directory.
func SetupTempConfigDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("CONFMGR_CONFIG_DIR", tempDir)
	t.Setenv("CONFMGR_ENV", "")

	return tempDir
}

// WriteDocument writes one named config document to the config directory.
// Must be called after SetupTempConfigDir().
//
// Usage:
//
//	dir := iotesting.SetupTempConfigDir(t)
//	iotesting.WriteDocument(t, dir, "app", `
//	model_type: gpt-like
//	`)
func WriteDocument(t *testing.T, configDir, name, content string) {
	t.Helper()

	path := filepath.Join(configDir, name+".yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp %s.yaml: %v", name, err)
	}
}

// WriteValidDocuments writes a complete set of config documents that pass
// every validation check for TestDomain. Tests that exercise a single
// failure mode start from this fixture and break one value.
func WriteValidDocuments(t *testing.T, configDir string) {
	t.Helper()

	WriteDocument(t, configDir, "cloud", `
cloud_details:
  `+TestDomain+`:
    provider: aws
    region: us-east-1
`)
	WriteDocument(t, configDir, "app", `
model_type: gpt-like
features:
  enable_feature_x: true
`)
	WriteDocument(t, configDir, "database", `
database_details:
  `+TestDomain+`:
    host: localhost
    port: 5432
`)
	WriteDocument(t, configDir, "secrets", `
cloud_secrets:
  `+TestDomain+`:
    api_key: `+TestAPIKey+`
`)
}
