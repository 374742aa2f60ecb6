// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/somalitag/internal/catalog"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a catalog as YAML",
		Long:  "Loads a catalog from any source and writes it in the YAML format accepted by --source yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), output, c.Dataset())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(stdout io.Writer, output string, dataset catalog.Dataset) error {
	if output == "" {
		return catalog.EncodeYAML(stdout, dataset)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := catalog.EncodeYAML(file, dataset); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
