// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	secretsDir       = ".secrets/"
	defaultUserAgent = "get-papers-list/0.1"
)

// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the get-papers-list CLI.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "Find PubMed papers with pharma/biotech-affiliated authors",
	Long: `get-papers-list searches PubMed for a query, fetches the matching records,
and keeps the papers where at least one author lists a non-academic
(pharmaceutical, biotech, or other company) affiliation.

Results are printed to the console, or written to --file as CSV. Use
--format json, yaml, or sqlite for another file format, or --format auto to
pick it from the file extension (.csv, .json, .yaml, .db).`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		slog.SetDefault(newLogger(os.Stderr, debug))

		s, err := secrets.Load(secretsDir, nil)
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
			slog.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
	RunE: runPapers,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")

	rootCmd.Flags().BoolP("debug", "d", false, "print debug information during execution")
	rootCmd.Flags().StringP("file", "f", "", "write results to this file instead of the console")
	rootCmd.Flags().String("format", "csv", "output file format: csv, json, yaml, sqlite, or auto (from the --file extension)")
	rootCmd.Flags().Int("max-results", 0, "maximum number of PubMed IDs to search (default 100)")

	viper.SetDefault("eutils.base_url", pubmed.DefaultBaseURL)
	viper.SetDefault("eutils.max_results", pubmed.DefaultMaxResults)
	viper.SetDefault("eutils.tool", "get-papers-list")
	viper.SetDefault("http.timeout", time.Duration(0))
	viper.SetDefault("http.user_agent", defaultUserAgent)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger returns a text logger on w at Warn level, or Debug when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
