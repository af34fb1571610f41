package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the published Buenos Aires open-data endpoint for the
// Ecobici datasets.
const DefaultBaseURL = "https://cdn.buenosaires.gob.ar/datosabiertos/datasets/transporte/bicicletas-publicas"

const (
	// DefaultTimeoutMS bounds the plain CSV download.
	DefaultTimeoutMS = 30000
	// DefaultArchiveTimeoutMS is the widened timeout applied only while
	// downloading the trip ZIP archive.
	DefaultArchiveTimeoutMS = 300000
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error: the fetchers need nothing
// beyond the fixed base URL, so defaults apply.
func LoadAppConfig() error {
	return loadFrom("config.yml", "./config/config.yml")
}

func loadFrom(paths ...string) error {
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	var cfg AppConfig
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	}
	cfg.applyDefaults()
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func (c *AppConfig) applyDefaults() {
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = DefaultBaseURL
	}
	if c.Source.TimeoutMS == 0 {
		c.Source.TimeoutMS = DefaultTimeoutMS
	}
	if c.Source.ArchiveTimeoutMS == 0 {
		c.Source.ArchiveTimeoutMS = DefaultArchiveTimeoutMS
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
}
