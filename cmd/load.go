package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/datasets"
	"github.com/robfromboulder/viewmapper/internal/engine"
	"github.com/robfromboulder/viewmapper/internal/warehouse"
)

// resolveDataset picks exactly one of --file, --dataset, --db as the view
// source. Flags are mutually exclusive; at least one is required.
func resolveDataset(ctx context.Context) (*warehouse.Dataset, error) {
	chosen := 0
	if sourceFile != "" {
		chosen++
	}
	if sourceDataset != "" {
		chosen++
	}
	if dbUrl != "" {
		chosen++
	}
	if chosen == 0 {
		return nil, fmt.Errorf("one of --file, --dataset, or --db is required")
	}
	if chosen > 1 {
		return nil, fmt.Errorf("--file, --dataset, and --db are mutually exclusive")
	}

	switch {
	case sourceFile != "":
		return warehouse.LoadFile(sourceFile)
	case sourceDataset != "":
		return datasets.Load(sourceDataset)
	default:
		source, err := warehouse.Connect(ctx, dbUrl)
		if err != nil {
			return nil, err
		}
		defer source.Close()
		views, err := source.FetchViews(ctx, catalogFlag, schemaFlag)
		if err != nil {
			return nil, err
		}
		return &warehouse.Dataset{Views: views}, nil
	}
}

// loadEngineFromFlags resolves the configured view source and loads it
// into a fresh Engine, printing the same load-summary banner every
// loading command shares.
func loadEngineFromFlags(ctx context.Context) (*engine.Engine, error) {
	ds, err := resolveDataset(ctx)
	if err != nil {
		return nil, err
	}

	e := engine.NewEngine(configuredLogger())
	loaded, skipped := e.LoadDataset(ds.Views)

	fmt.Println(e.Summary())
	fmt.Printf("Loaded: %d views | Skipped (parse errors): %d\n", loaded, len(skipped))
	for _, name := range skipped {
		fmt.Printf("  ✗ %s\n", name)
	}

	if loaded == 0 {
		return nil, apperrors.NewNoViewsFound(catalogFlag, schemaFlag)
	}
	return e, nil
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Println(apperrors.Diagnostic(err))
	os.Exit(1)
}
