// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/limitlab/labsite/internal/assets"
	"github.com/limitlab/labsite/pkg/types"
)

func setDefaults() {
	viper.SetDefault("content.dir", "content")
	viper.SetDefault("content.source", string(types.SourceYAML))
	viper.SetDefault("content.db", "content/index/labsite.db")
	viper.SetDefault("server.addr", ":9001")
	viper.SetDefault("server.watch", false)
	viper.SetDefault("server.shutdown_timeout", 5*time.Second)
	viper.SetDefault("build.out_dir", "out")
	viper.SetDefault("build.workers", 4)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	envs := make(map[string]any, len(assets.DefaultEnvironments))
	for name, env := range assets.DefaultEnvironments {
		envs[name] = map[string]any{"bucket": env.Bucket, "domain": env.Domain}
	}
	viper.SetDefault("assets.environments", envs)
}

// bindFlag ties a flag to a config key so the flag wins when set and the
// config file or environment applies otherwise.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", f.Name, err))
	}
}

func loadConfig() (types.Config, error) {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	switch c.Content.Source {
	case types.SourceYAML, types.SourceSQLite:
	case "":
		c.Content.Source = types.SourceYAML
	default:
		return c, fmt.Errorf("unknown content source %q: use yaml or sqlite", c.Content.Source)
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	return c, nil
}
