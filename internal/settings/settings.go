// Package settings holds the operator-facing runtime configuration that is
// not part of the scenario itself: separators, solver choice, and where
// reports go.
package settings

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings is the runtime configuration loaded from a YAML file.
type Settings struct {
	// BusSeparator splits multi-bus cells. FactorSeparator splits
	// conversion-factor cells; both default to the same grammar.
	BusSeparator    string   `yaml:"bus_separator" validate:"required,max=3"`
	FactorSeparator string   `yaml:"factor_separator" validate:"required,max=3"`
	Solver          string   `yaml:"solver" validate:"required,oneof=null cbc glpk gurobi"`
	OutputDir       string   `yaml:"output_dir" validate:"required"`
	ExportFormats   []string `yaml:"export_formats" validate:"dive,oneof=json yaml"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		BusSeparator:    ";",
		FactorSeparator: "|",
		Solver:          "null",
		OutputDir:       "output",
		ExportFormats:   []string{"json"},
	}
}

// Load reads and validates a settings file. Absent keys keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the structural constraints on the settings values.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Separators returns the distinct separator runes for the list splitter.
func (s Settings) Separators() []rune {
	seen := map[rune]struct{}{}
	var runes []rune
	for _, sep := range []string{s.BusSeparator, s.FactorSeparator} {
		for _, r := range sep {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			runes = append(runes, r)
		}
	}
	return runes
}
