package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Styles lists the status names covered by each color class of the report
// table. Matching is case-insensitive; statuses outside all three sets render
// uncolored.
type Styles struct {
	Green  []string `yaml:"green"`
	Yellow []string `yaml:"yellow"`
	Red    []string `yaml:"red"`
}

// DefaultStyles returns the stock status classification.
func DefaultStyles() Styles {
	return Styles{
		Green:  []string{"done", "cancelled"},
		Yellow: []string{"in progress", "awaiting feedback", "in review"},
		Red:    []string{"to do", "on hold"},
	}
}

// stylesFile mirrors the YAML shape of a status-class override file:
//
//	statusColors:
//	  green: [done, closed]
//	  yellow: [in progress]
//	  red: [blocked]
type stylesFile struct {
	StatusColors Styles `yaml:"statusColors"`
}

// LoadStyles reads a YAML status-class file. An empty path selects the
// defaults; a named file must exist and define at least one status.
func LoadStyles(path string) (Styles, error) {
	if path == "" {
		return DefaultStyles(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Styles{}, fmt.Errorf("read styles file: %w", err)
	}

	var doc stylesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Styles{}, fmt.Errorf("parse styles file %q: %w", path, err)
	}

	s := doc.StatusColors
	if len(s.Green)+len(s.Yellow)+len(s.Red) == 0 {
		return Styles{}, fmt.Errorf("styles file %q defines no statusColors", path)
	}
	return s, nil
}
