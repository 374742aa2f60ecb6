// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/catalog"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestValidate_Builtin(t *testing.T) {
	stdout, _, err := execute(t, "validate")

	require.NoError(t, err)
	assert.Equal(t, "ok: 6 profiles, 10 top-level categories, 17 tags\n", stdout)
}

func TestValidate_ReportsViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	document := `
profiles:
  - id: 1
    name: Ada
    status: Unknown
  - id: 1
    name: Ada
    status: Alive
`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	_, stderr, err := execute(t, "validate", "--source", "yaml", "--path", path)

	require.Error(t, err)
	assert.Contains(t, stderr, "profiles[0].status")
	assert.Contains(t, stderr, "profiles[1].id")
}

func TestExport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	_, _, err := execute(t, "export", "--output", path)
	require.NoError(t, err)

	stdout, _, err := execute(t, "validate", "--source", "yaml", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "6 profiles")

	reloaded, err := catalog.Load(context.Background(), catalog.YAMLSource{Path: path}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	original, err := catalog.New(catalog.Shipped())
	require.NoError(t, err)
	assert.Equal(t, original.Dataset(), reloaded.Dataset())
}

func TestExport_Stdout(t *testing.T) {
	stdout, _, err := execute(t, "export")

	require.NoError(t, err)
	assert.Contains(t, stdout, "name: Mohamed Abdullahi Farmaajo")
}

func TestRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown source", []string{"validate", "--source", "mongo"}},
		{"yaml without path", []string{"validate", "--source", "yaml"}},
		{"seed without database", []string{"seed", "--database-url", ""}},
		{"seed from postgres", []string{"seed", "--source", "postgres", "--database-url", "postgres://localhost/x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
