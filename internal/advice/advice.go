// Package advice holds the static carbon reduction strategies shown after a
// calculation, and picks a reduction priority from the project total.
package advice

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/sitecarbon/internal/emissions"
)

//go:embed data/advice.yaml
var adviceYAML []byte

// Suggestion is one reduction strategy.
type Suggestion struct {
	ID          string               `yaml:"id" json:"id"`
	Title       string               `yaml:"title" json:"title"`
	Description string               `yaml:"description" json:"description"`
	Impact      string               `yaml:"impact" json:"impact"`
	Categories  []emissions.Category `yaml:"categories" json:"categories"`
}

// Targets reports whether the suggestion addresses category c.
func (s Suggestion) Targets(c emissions.Category) bool {
	for _, target := range s.Categories {
		if target == c {
			return true
		}
	}
	return false
}

type catalog struct {
	Suggestions []Suggestion `yaml:"suggestions"`
	Resources   []string     `yaml:"resources"`
	Note        string       `yaml:"note"`
}

//nolint:gochecknoglobals // Parsed once from embedded data, never mutated afterwards.
var (
	loadOnce sync.Once
	loaded   catalog
	loadErr  error
)

func load() (catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parseCatalog(adviceYAML)
	})
	return loaded, loadErr
}

func parseCatalog(data []byte) (catalog, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return catalog{}, fmt.Errorf("parsing advice data: %w", err)
	}
	if len(c.Suggestions) == 0 {
		return catalog{}, ErrNoSuggestions
	}
	return c, nil
}

// mustLoad panics if the embedded catalog is broken; it is compiled into the
// binary and covered by tests.
func mustLoad() catalog {
	c, err := load()
	if err != nil {
		panic(err)
	}
	return c
}

// Suggestions returns a copy of every reduction strategy in display order.
func Suggestions() []Suggestion {
	src := mustLoad().Suggestions
	out := make([]Suggestion, len(src))
	for i, s := range src {
		s.Categories = append([]emissions.Category(nil), s.Categories...)
		out[i] = s
	}
	return out
}

// Resources returns a copy of the further-reading list.
func Resources() []string {
	return append([]string(nil), mustLoad().Resources...)
}

// Note returns the footnote shown under each suggestion.
func Note() string {
	return mustLoad().Note
}
