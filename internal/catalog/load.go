package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Dataset file names, relative to the catalog root
const (
	PracticeFile   = "practice.yaml"
	ConditionsFile = "conditions.yaml"
	SymptomsFile   = "symptoms.yaml"
	BodyPartsFile  = "body_parts.yaml"
	ActivitiesFile = "activities.yaml"
	TreatmentsFile = "treatments.yaml"
	IntentsFile    = "intents.yaml"
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once per process
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			defaultErr = fmt.Errorf("failed to open embedded catalog: %w", err)
			return
		}
		defaultCatalog, defaultErr = Load(context.Background(), sub)
	})
	return defaultCatalog, defaultErr
}

// LoadDir loads a catalog from a directory holding the dataset files
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidCatalog, dir)
	}
	return Load(ctx, os.DirFS(dir))
}

// Load decodes every dataset file from fsys concurrently and validates the result
func Load(ctx context.Context, fsys fs.FS) (*Catalog, error) {
	cat := &Catalog{}

	// Each goroutine writes a distinct field
	g, gctx := errgroup.WithContext(ctx)
	decode := func(name string, dst interface{}) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			if err := yaml.Unmarshal(data, dst); err != nil {
				return fmt.Errorf("failed to parse %s: %w", name, err)
			}
			return nil
		})
	}

	decode(PracticeFile, &cat.Practice)
	decode(ConditionsFile, &cat.Conditions)
	decode(SymptomsFile, &cat.Symptoms)
	decode(BodyPartsFile, &cat.BodyParts)
	decode(ActivitiesFile, &cat.Activities)
	decode(TreatmentsFile, &cat.Treatments)
	decode(IntentsFile, &cat.Intents)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat.finish()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
