// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/somalitag/internal/platform/metrics"
)

// Source produces the raw dataset a catalog is built from.
type Source interface {
	Name() string
	Dataset(ctx context.Context) (Dataset, error)
}

// Load reads a source once, validates it and records its size.
func Load(ctx context.Context, source Source, logger *slog.Logger) (*Catalog, error) {
	dataset, err := source.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog from %s: %w", source.Name(), err)
	}

	catalog, err := New(dataset)
	if err != nil {
		return nil, fmt.Errorf("validate catalog from %s: %w", source.Name(), err)
	}

	counts := catalog.Counts()
	metrics.CatalogEntries.WithLabelValues("profiles").Set(float64(counts.Profiles))
	metrics.CatalogEntries.WithLabelValues("categories").Set(float64(counts.Categories))
	metrics.CatalogEntries.WithLabelValues("tags").Set(float64(counts.Tags))

	logger.Info("catalog_loaded",
		slog.String("source", source.Name()),
		slog.Int("profiles", counts.Profiles),
		slog.Int("categories", counts.Categories),
		slog.Int("tags", counts.Tags),
	)

	return catalog, nil
}

// # Shipped Source

// ShippedSource serves the dataset compiled into the binary.
type ShippedSource struct{}

func (ShippedSource) Name() string { return "builtin" }

func (ShippedSource) Dataset(context.Context) (Dataset, error) {
	return Shipped(), nil
}

// # YAML Source

// YAMLSource reads a dataset from a YAML file on disk.
type YAMLSource struct {
	Path string
}

func (s YAMLSource) Name() string { return "yaml:" + s.Path }

func (s YAMLSource) Dataset(context.Context) (Dataset, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return Dataset{}, err
	}
	defer file.Close()

	return DecodeYAML(file)
}

// DecodeYAML reads a dataset document. Unknown keys are rejected.
func DecodeYAML(reader io.Reader) (Dataset, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var dataset Dataset
	if err := decoder.Decode(&dataset); err != nil {
		if err == io.EOF {
			return Dataset{}, nil
		}
		return Dataset{}, fmt.Errorf("decode yaml: %w", err)
	}
	return dataset, nil
}

// EncodeYAML writes a dataset document with two-space indentation.
func EncodeYAML(writer io.Writer, dataset Dataset) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(dataset); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}
