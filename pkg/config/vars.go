package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "confmgr"
)

// ConfigDir returns the directory path for configuration documents.
// Returns ~/.config/confmgr by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}
