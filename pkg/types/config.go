// Copyright LIMIT Lab, 2026. All rights reserved.

package types

import "time"

// ContentSource selects where publication records are loaded from.
type ContentSource string

const (
	SourceYAML   ContentSource = "yaml"
	SourceSQLite ContentSource = "sqlite"
)

// ContentConfig locates the site content.
type ContentConfig struct {
	// Dir holds site.yaml, publications.yaml, members.yaml and news.yaml.
	// Files missing from Dir fall back to the built-in defaults.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Source selects yaml (default) or sqlite for publication records.
	Source ContentSource `json:"source" yaml:"source" mapstructure:"source"`

	// DB is the catalog database path used when Source is sqlite.
	DB string `json:"db" yaml:"db" mapstructure:"db"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Addr is the listen address (default ":9001").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Watch reloads content when files under the content directory change.
	Watch bool `json:"watch" yaml:"watch" mapstructure:"watch"`

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// BuildConfig holds settings for the static export.
type BuildConfig struct {
	// OutDir receives the exported site (default "out").
	OutDir string `json:"out_dir" yaml:"out_dir" mapstructure:"out_dir"`

	// Workers bounds concurrent page rendering (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// AssetEnvironment is one CDN target for the asset planner.
type AssetEnvironment struct {
	Bucket string `json:"bucket" yaml:"bucket" mapstructure:"bucket"`
	Domain string `json:"domain" yaml:"domain" mapstructure:"domain"`
}

// AssetsConfig maps environment names (e.g. "prod", "dev") to CDN targets.
type AssetsConfig struct {
	Environments map[string]AssetEnvironment `json:"environments" yaml:"environments" mapstructure:"environments"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json (default) or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all labsite settings.
type Config struct {
	Content ContentConfig `json:"content" yaml:"content" mapstructure:"content"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Build   BuildConfig   `json:"build" yaml:"build" mapstructure:"build"`
	Assets  AssetsConfig  `json:"assets" yaml:"assets" mapstructure:"assets"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
