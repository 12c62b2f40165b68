// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/output"
	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// queryOptions holds the per-invocation inputs of the root command.
type queryOptions struct {
	Query      string
	Debug      bool
	File       string
	Format     output.Format
	MaxResults int
}

func runPapers(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	file, _ := cmd.Flags().GetString("file")
	formatName, _ := cmd.Flags().GetString("format")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg := pubmedConfig()
	secrets.Apply(&cfg, loadedSecrets)

	client := pubmed.NewClient(cfg, slog.Default())
	opts := queryOptions{
		Query:      args[0],
		Debug:      debug,
		File:       file,
		Format:     format,
		MaxResults: maxResults,
	}

	runQuery(cmd.Context(), client, opts, cmd.OutOrStdout())
	return nil
}

// pubmedConfig reads the E-utilities settings from viper.
func pubmedConfig() types.PubMedConfig {
	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		BaseURL:    viper.GetString("eutils.base_url"),
		MaxResults: viper.GetInt("eutils.max_results"),
		Tool:       viper.GetString("eutils.tool"),
		Email:      viper.GetString("eutils.email"),
		APIKey:     viper.GetString("eutils.api_key"),
	}
}

// runQuery searches, fetches, filters and writes the results to w or to
// opts.File. Failures are reported on w as a single line; empty results
// are reported as notices and leave no file behind.
func runQuery(ctx context.Context, client *pubmed.Client, opts queryOptions, w io.Writer) {
	if err := searchAndWrite(ctx, client, opts, w); err != nil {
		fmt.Fprintf(w, "⚠️ Error: %v\n", err)
	}
}

func searchAndWrite(ctx context.Context, client *pubmed.Client, opts queryOptions, w io.Writer) error {
	ids, err := client.SearchIDs(ctx, opts.Query, opts.MaxResults)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "❌ No results found.")
		return nil
	}

	papers, err := client.FetchPapers(ctx, ids, opts.Debug, w)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		fmt.Fprintln(w, "❌ No non-academic pharma/biotech authors found.")
		return nil
	}

	if opts.File == "" {
		output.Print(w, papers)
		return nil
	}

	report := output.NewReport(opts.Query, len(ids), papers)
	if err := output.WriteFile(opts.File, opts.Format, report); err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Saved %d results to %s\n", len(papers), opts.File)
	return nil
}
