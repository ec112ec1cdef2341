package contracts

// Loader builds the merged configuration snapshot
type Loader interface {
	// Load reads the layer documents from dir and applies environment
	// overrides for the given profile
	Load(dir, profile string) (*Config, error)
}

// Config represents the merged confmgr configuration
type Config struct {
	Profile string
	Data    map[string]any
	Sources []Source
}

// Source describes one layer document on disk
type Source struct {
	Name   string
	Path   string
	Exists bool
	Size   int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string
	Format string
}
