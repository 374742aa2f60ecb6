// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/somalitag/internal/platform/apperr"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog against the data model invariants",
		Long:  "Loads a catalog and reports every invariant violation (ids, slugs, statuses, category hierarchy).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.load(cmd)
			if err != nil {
				printViolations(cmd, err)
				return err
			}

			counts := c.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d profiles, %d top-level categories, %d tags\n",
				counts.Profiles, counts.Categories, counts.Tags)
			return nil
		},
	}
}

// printViolations lists field-level details of a validation failure.
func printViolations(cmd *cobra.Command, err error) {
	appErr := apperr.As(err)
	if appErr == nil {
		return
	}

	for _, detail := range appErr.Details {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", detail.Field, detail.Message)
	}
}
