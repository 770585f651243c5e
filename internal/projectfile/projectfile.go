// Package projectfile reads construction project quantities from YAML or JSON
// files so several sites can be calculated in one invocation.
package projectfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/logging"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrNoQuantities means the file parsed but had no quantities section.
const ErrNoQuantities = constError("project file has no quantities")

// Project is one site read from a file.
type Project struct {
	Name   string           `json:"name"`
	Path   string           `json:"path"`
	Inputs emissions.Inputs `json:"-"`

	// Coercions lists quantities that were present but unusable.
	Coercions []emissions.Coercion `json:"-"`
}

// document is the on-disk shape shared by YAML and JSON.
type document struct {
	Name       string         `yaml:"name" json:"name"`
	Quantities map[string]any `yaml:"quantities" json:"quantities"`
}

// Load reads a single project file. Files ending in .json are decoded as
// JSON, anything else as YAML.
func Load(ctx context.Context, path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("reading project file %s: %w", path, err)
	}
	return Parse(ctx, path, data)
}

// Parse decodes data as if it had been read from path.
func Parse(ctx context.Context, path string, data []byte) (Project, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Project{}, fmt.Errorf("parsing JSON project file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return Project{}, fmt.Errorf("parsing YAML project file %s: %w", path, err)
	}
	if doc.Quantities == nil {
		return Project{}, fmt.Errorf("%s: %w", path, ErrNoQuantities)
	}

	inputs, notes := emissions.InputsFromMap(doc.Quantities)
	p := Project{
		Name:      strings.TrimSpace(doc.Name),
		Path:      path,
		Inputs:    inputs,
		Coercions: notes,
	}
	if p.Name == "" {
		p.Name = defaultName(path)
	}

	log := logging.FromContext(ctx)
	for _, n := range notes {
		log.Debug().
			Ctx(ctx).
			Str("component", "projectfile").
			Str("path", path).
			Str("category", n.Category.Key()).
			Str("raw", n.Raw).
			Msg("quantity treated as 0")
	}
	log.Debug().
		Ctx(ctx).
		Str("component", "projectfile").
		Str("path", path).
		Interface("quantities", p.Inputs.Map()).
		Msg("project file loaded")
	return p, nil
}

func defaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadAll reads every path concurrently, bounded by the number of CPUs.
// Results are returned in argument order. The first failure cancels the
// remaining loads and is returned.
func LoadAll(ctx context.Context, paths []string) ([]Project, error) {
	projects := make([]Project, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := Load(gCtx, path)
			if err != nil {
				return err
			}
			projects[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projects, nil
}
