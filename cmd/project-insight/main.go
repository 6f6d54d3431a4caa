// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the project-insight CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the project-insight CLI.
var rootCmd = &cobra.Command{
	Use:   "project-insight",
	Short: "Offline project introspection and research suggestions",
	Long: `project-insight inspects a local source directory: it reads the project
manifest, scans source files for imports, parses the structured README, and
merges the four signals into a technology profile with provenance. It then
renders canned research suggestions and a static list of relevant papers.

Everything runs locally; no network calls are made.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./project-insight.yaml or ~/.config/project-insight/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("project-insight")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "project-insight"))
		}
	}

	viper.SetEnvPrefix("PROJECT_INSIGHT")
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
