// Package catalog serves the static reference data behind the JSON
// endpoints: the metric catalog, usage examples and the option lists the
// CLI prints.
package catalog

import (
	_ "embed"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/theme"
)

//go:embed metrics.yaml
var metricsYAML []byte

//go:embed examples.yaml
var examplesYAML []byte

// MetricInfo describes one selectable stat card metric.
type MetricInfo struct {
	Key         string `yaml:"key" json:"key"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

// Example is a canned request showing off one card.
type Example struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Path        string `yaml:"path" json:"path"`
}

// Option is a value accepted by a query parameter and its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is loaded once at startup and read-only afterwards.
type Catalog struct {
	Metrics  []MetricInfo
	Examples []Example
}

// Load parses the embedded catalog files.
func Load() (*Catalog, error) {
	var m struct {
		Metrics []MetricInfo `yaml:"metrics"`
	}
	if err := yaml.Unmarshal(metricsYAML, &m); err != nil {
		return nil, fmt.Errorf("parse metrics catalog: %w", err)
	}
	var e struct {
		Examples []Example `yaml:"examples"`
	}
	if err := yaml.Unmarshal(examplesYAML, &e); err != nil {
		return nil, fmt.Errorf("parse examples catalog: %w", err)
	}
	for _, mi := range m.Metrics {
		if _, ok := card.LookupMetric(card.MetricKey(mi.Key)); !ok {
			return nil, fmt.Errorf("metrics catalog: unknown key %q", mi.Key)
		}
	}
	return &Catalog{Metrics: m.Metrics, Examples: e.Examples}, nil
}

// Themes lists the accepted theme values, auto included.
func Themes() []Option {
	return options(append(theme.Names(), theme.Auto))
}

// Animations lists the accepted animation values.
func Animations() []Option {
	return []Option{
		{Value: "countUp", Label: "Count Up"},
		{Value: "slideIn", Label: "Slide In"},
		{Value: "pulse", Label: "Pulse"},
	}
}

// Loaders lists the loader types.
func Loaders() []Option {
	vals := make([]string, len(card.LoaderTypes))
	for i, t := range card.LoaderTypes {
		vals[i] = string(t)
	}
	return options(vals)
}

func options(values []string) []Option {
	title := cases.Title(language.English)
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: title.String(v)}
	}
	return out
}
