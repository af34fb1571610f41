// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every field has a working default, so running without a config file is
// supported.
package config
