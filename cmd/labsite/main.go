// Copyright LIMIT Lab, 2026. All rights reserved.

// Package main is the entry point for the labsite CLI. It serves the lab
// website, builds it as a static export, and exposes the publication
// filter on the command line and in a terminal browser.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/limitlab/labsite/internal/logging"
	"github.com/limitlab/labsite/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg    types.Config
	logger = zap.NewNop()
)

// rootCmd is the base command for the labsite CLI.
var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "Build and serve the LIMIT Lab website",
	Long: `labsite renders the lab website from YAML content: a home page with news
and members, a publications list filterable by conference, year, and field,
and a contact page.

Serve it over HTTP with serve, or write a static export with build. The
publication filter is also available as publications, export, and the
terminal browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		l, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./labsite.yaml or $XDG_CONFIG_HOME/labsite/labsite.yaml)")
	pf.String("content-dir", "content", "directory holding site.yaml, publications.yaml, members.yaml, news.yaml")
	pf.String("source", "yaml", "publication source: yaml or sqlite")
	pf.String("db", "content/index/labsite.db", "catalog database used by --source sqlite")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "json", "log format: json or console")

	bindFlag("content.dir", pf.Lookup("content-dir"))
	bindFlag("content.source", pf.Lookup("source"))
	bindFlag("content.db", pf.Lookup("db"))
	bindFlag("log.level", pf.Lookup("log-level"))
	bindFlag("log.format", pf.Lookup("log-format"))
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labsite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "labsite"))
	}

	viper.SetEnvPrefix("LABSITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
