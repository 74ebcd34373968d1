package config

// DefaultConfig returns the configuration used when no config file is
// found. Source candidates default to the conventional project paths.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Dir: "resources",
		},
		Platforms: []string{"android", "ios"},
		Sources: SourcesConfig{
			Icon:   []string{"icon.png", "resources/icon.png"},
			Splash: []string{"splash.png", "resources/splash.png"},
		},
	}
}
