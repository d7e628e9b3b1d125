// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the image-search CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/image-search/internal/search"
	"github.com/pdiddy/image-search/internal/secrets"
	"github.com/pdiddy/image-search/internal/unsplash"
	"github.com/pdiddy/image-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the image-search CLI.
var rootCmd = &cobra.Command{
	Use:   "image-search",
	Short: "Search Unsplash photos from the terminal",
	Long: `image-search queries the Unsplash photo search API page by page.

browse opens an interactive screen with a search field, preset terms and a
photo grid. search runs a single query and prints the page as a table, JSON,
YAML or TOML.

The Unsplash access key is read from unsplash.access_key (config file or
IMAGE_SEARCH_UNSPLASH_ACCESS_KEY) or from .secrets/unsplash-access-key.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./image-search.yaml or ~/.config/image-search/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", secrets.DefaultDir, "directory holding one file per credential")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("image-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "image-search"))
		}
	}

	configureViper()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configureViper registers defaults and environment bindings. Every key has
// a default so that AutomaticEnv covers it during Unmarshal.
func configureViper() {
	viper.SetDefault("unsplash.access_key", "")
	viper.SetDefault("unsplash.base_url", unsplash.DefaultSearchURL)
	viper.SetDefault("http.timeout", "0s")
	viper.SetDefault("http.user_agent", "image-search/"+version)
	viper.SetDefault("ui.presets", search.DefaultPresets)
	viper.SetDefault("ui.discard_stale", false)
	viper.SetDefault("log_file", "image-search.log")

	viper.SetEnvPrefix("IMAGE_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig decodes the merged configuration. The access key falls back to
// the secrets directory when no explicit value is configured.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Unsplash.AccessKey = secrets.Lookup(loadedSecrets, secrets.UnsplashAccessKey, cfg.Unsplash.AccessKey)
	if cfg.Unsplash.AccessKey == "" {
		fmt.Fprintln(os.Stderr, "warning: no Unsplash access key; set unsplash.access_key or add .secrets/"+secrets.UnsplashAccessKey)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
