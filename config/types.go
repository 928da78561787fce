package config

import "time"

// Config represents the configuration for one deployment of the access
// layer. It is loaded once at startup and treated as immutable; separate
// client instances (production vs. short-timeout test) each load their
// own Config.
type Config struct {
	App AppConfig `koanf:"app" json:"app" yaml:"app" mapstructure:"app"`
	API APIConfig `koanf:"api" json:"api" yaml:"api" mapstructure:"api"`
	Log LogConfig `koanf:"log" json:"log" yaml:"log" mapstructure:"log"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name    string `koanf:"name" json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Version string `koanf:"version" json:"version" yaml:"version" mapstructure:"version" validate:"required"`
	Env     string `koanf:"env" json:"env" yaml:"env" mapstructure:"env" validate:"required,oneof=development staging production"`
}

// APIConfig holds the settings handed to the client facade: the base
// address all relative paths resolve against, per-call defaults, and
// headers attached to every outbound request.
type APIConfig struct {
	BaseURL     string            `koanf:"baseurl" json:"baseurl" yaml:"baseurl" mapstructure:"baseurl" validate:"required,url"`
	Timeout     time.Duration     `koanf:"timeout" json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
	MaxAttempts int               `koanf:"maxattempts" json:"maxattempts" yaml:"maxattempts" mapstructure:"maxattempts" validate:"gte=1"`
	RetryDelay  time.Duration     `koanf:"retrydelay" json:"retrydelay" yaml:"retrydelay" mapstructure:"retrydelay" validate:"gte=0"`
	Headers     map[string]string `koanf:"headers" json:"headers" yaml:"headers" mapstructure:"headers"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" mapstructure:"level"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}
