package config

// SourceConfig describes the open-data endpoint the fetchers pull from.
type SourceConfig struct {
	BaseURL          string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS        int    `yaml:"timeoutMS" validate:"gte=0"`
	ArchiveTimeoutMS int    `yaml:"archiveTimeoutMS" validate:"gte=0"`
}

// OutputConfig contains CLI output defaults.
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json csv"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
}
