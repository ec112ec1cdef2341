package config

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string

	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string
}

// LogConfig derives log settings from the merged keys log_level and
// log_format. Absent keys fall back to info level and text format;
// unrecognized values are resolved by the logger itself.
func (c *Config) LogConfig() *LogConfig {
	lc := &LogConfig{
		Level:  "info",
		Format: "text",
	}
	if s, ok := c.StringAt("log_level"); ok {
		lc.Level = s
	}
	if s, ok := c.StringAt("log_format"); ok {
		lc.Format = s
	}
	return lc
}
