package config

// Config is the full project configuration, usually read from
// .iconforge.yaml in the project root. CLI flags override file values.
type Config struct {
	Log       LogConfig      `yaml:"log"`
	Output    OutputConfig   `yaml:"output"`
	Platforms []string       `yaml:"platforms"`
	Sources   SourcesConfig  `yaml:"sources"`
	Manifest  ManifestConfig `yaml:"manifest"`
}

type LogConfig struct {
	Level string `yaml:"log_level"`
	Dir   string `yaml:"log_dir"`
	File  string `yaml:"log_file"`
}

type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Quality     int    `yaml:"quality"`
	Concurrency int    `yaml:"concurrency"`
	Report      string `yaml:"report"`
}

// SourcesConfig lists candidate source images per resource type, in
// preference order. The first candidate that validates is used.
type SourcesConfig struct {
	Icon   []string `yaml:"icon"`
	Splash []string `yaml:"splash"`
}

// ManifestConfig names the manifest files to write after generation.
// Empty paths skip that manifest.
type ManifestConfig struct {
	XML          string `yaml:"xml"`
	ContentsJSON string `yaml:"contents_json"`
}
