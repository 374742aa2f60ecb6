// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/platform/config"
	"github.com/taibuivan/somalitag/internal/platform/migration"
	pgstore "github.com/taibuivan/somalitag/internal/platform/postgres"
)

func newSeedCmd(flags *rootFlags) *cobra.Command {
	var migrationPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the PostgreSQL catalog with another source",
		Long:  "Validates a catalog, applies pending migrations, and replaces every catalog table in one transaction.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.source == config.CatalogSourcePostgres {
				return fmt.Errorf("seed reads from builtin or yaml, not from the database it writes")
			}
			if flags.databaseURL == "" {
				return fmt.Errorf("--database-url is required")
			}

			c, err := flags.load(cmd)
			if err != nil {
				printViolations(cmd, err)
				return err
			}

			ctx := cmd.Context()
			logger := flags.logger(cmd)

			if err := migration.RunUp(flags.databaseURL, migrationPath, logger); err != nil {
				return err
			}

			pool, err := pgstore.NewPool(ctx, flags.databaseURL, pgstore.Options{}, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := catalog.NewPostgresSource(pool).Seed(ctx, c); err != nil {
				return err
			}

			counts := c.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "seeded: %d profiles, %d categories, %d tags\n",
				counts.Profiles, len(c.Categories()), counts.Tags)
			return nil
		},
	}

	cmd.Flags().StringVar(&migrationPath, "migrations", "", "Migration directory (default: embedded)")

	return cmd
}
