// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl validates, exports and seeds SomaliTag catalogs.
//
// # Usage
//
//	catalogctl validate --source yaml --path catalog.yaml
//	catalogctl export --output catalog.yaml
//	catalogctl seed --source yaml --path catalog.yaml --database-url postgres://...
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/platform/config"
	"github.com/taibuivan/somalitag/internal/platform/constants"
	pgstore "github.com/taibuivan/somalitag/internal/platform/postgres"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	source      string
	path        string
	databaseURL string
	verbose     bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Validate, export and seed the SomaliTag profile catalog",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.source, "source", "s", config.CatalogSourceBuiltin, "Catalog source (builtin, yaml, postgres)")
	rootCmd.PersistentFlags().StringVarP(&flags.path, "path", "p", "", "YAML catalog file for --source yaml")
	rootCmd.PersistentFlags().StringVar(&flags.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL for --source postgres and seed")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(
		newValidateCmd(flags),
		newExportCmd(flags),
		newSeedCmd(flags),
	)

	return rootCmd
}

// logger writes text logs to stderr when verbose, and discards them otherwise.
func (flags *rootFlags) logger(cmd *cobra.Command) *slog.Logger {
	if !flags.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

// load reads and validates the catalog selected by the root flags.
func (flags *rootFlags) load(cmd *cobra.Command) (*catalog.Catalog, error) {
	ctx := cmd.Context()
	logger := flags.logger(cmd)

	switch flags.source {
	case config.CatalogSourceBuiltin:
		return catalog.Load(ctx, catalog.ShippedSource{}, logger)

	case config.CatalogSourceYAML:
		if flags.path == "" {
			return nil, fmt.Errorf("--path is required for --source yaml")
		}
		return catalog.Load(ctx, catalog.YAMLSource{Path: flags.path}, logger)

	case config.CatalogSourcePostgres:
		if flags.databaseURL == "" {
			return nil, fmt.Errorf("--database-url is required for --source postgres")
		}

		pool, err := pgstore.NewPool(ctx, flags.databaseURL, pgstore.Options{ReadOnly: true}, logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		return catalog.Load(ctx, catalog.NewPostgresSource(pool), logger)

	default:
		return nil, fmt.Errorf("unknown source %q, valid sources: builtin, yaml, postgres", flags.source)
	}
}
