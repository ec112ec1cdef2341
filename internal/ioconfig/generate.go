package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samiksha22122/ConfigManager/pkg/config"
	"github.com/samiksha22122/ConfigManager/pkg/templates"
	"gopkg.in/yaml.v3"
)

// GetConfigDir returns the configuration directory. CONFMGR_CONFIG_DIR
// overrides the default ~/.config/confmgr, which is used on all
// platforms (Linux, macOS, Windows) for consistency.
func GetConfigDir() (string, error) {
	pe, err := readProcessEnv()
	if err != nil {
		return "", err
	}
	if pe.ConfigDir != "" {
		return pe.ConfigDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return config.ConfigDir(homeDir), nil
}

// DocumentPath returns the path of a named layer document inside dir.
func DocumentPath(dir, name string) string {
	return filepath.Join(dir, name+".yaml")
}

// SecretsPath returns the path of the secrets document inside dir. The
// validator checks this path for existence at validation time.
func SecretsPath(dir string) string {
	return DocumentPath(dir, "secrets")
}

// GenerateDefaultConfig writes the embedded template documents into dir,
// creating the directory when needed. Existing documents are left alone
// unless force is set. It returns the paths it wrote; when every
// document already exists it returns an error.
func GenerateDefaultConfig(dir string, force bool) ([]string, error) {
	var err error
	if dir == "" {
		dir, err = GetConfigDir()
		if err != nil {
			return nil, err
		}
	}

	if err = os.MkdirAll(dir, 0755); err != nil {
		return nil, CreateDirError(dir, err)
	}

	var created []string
	for _, name := range DocumentNames {
		path := DocumentPath(dir, name)

		if !force {
			if _, statErr := os.Stat(path); statErr == nil {
				continue
			}
		}

		// Secrets should not be world-readable.
		mode := os.FileMode(0644)
		if name == "secrets" {
			mode = 0600
		}

		if err = os.WriteFile(path, []byte(templates.Documents[name]), mode); err != nil {
			return nil, WriteFileError(path, err)
		}
		created = append(created, path)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("config documents already exist at %s", dir)
	}
	return created, nil
}

// ValidateGeneratedConfig reads a written document back and confirms it
// parses as YAML. Used by init and tests.
func ValidateGeneratedConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadFileError(path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ParseFileError(path, err)
	}
	return nil
}
