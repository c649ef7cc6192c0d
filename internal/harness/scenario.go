package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one end-to-end test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps are executed in order against a fresh database.
	Steps []Step `yaml:"steps"`

	// Expect validates the final state after all steps.
	Expect Expect `yaml:"expect,omitempty"`
}

// Step is a single scenario action. Exactly one field group applies:
// Record (with optional NoMatch) or Delete.
type Step struct {
	// Record is a natural-language sentence fed to the parser. On a match
	// the extracted record is inserted into the store.
	Record string `yaml:"record,omitempty"`

	// NoMatch marks a Record step whose sentence must NOT parse.
	// The step then inserts nothing.
	NoMatch bool `yaml:"no_match,omitempty"`

	// Delete removes the row with this id and expects a row to be removed.
	Delete int64 `yaml:"delete,omitempty"`
}

// Expect describes the final state assertions for a scenario.
type Expect struct {
	// Totals maps kind to the expected total as a decimal string.
	// Kinds not listed here must be absent from the result.
	Totals map[string]string `yaml:"totals,omitempty"`

	// Count is the expected number of listed transactions.
	Count *int `yaml:"count,omitempty"`

	// Report lists the expected revenue-by-description rows, in order.
	Report []ReportRow `yaml:"report,omitempty"`
}

// ReportRow is one expected row of the revenue-by-description report.
type ReportRow struct {
	Description string `yaml:"description"`
	Total       string `yaml:"total"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &s, nil
}

// LoadScenarios reads all *.yaml scenarios in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// Validate checks structural invariants of the scenario.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}

	for i, step := range s.Steps {
		switch {
		case step.Record != "" && step.Delete != 0:
			return fmt.Errorf("step %d: record and delete are mutually exclusive", i)
		case step.Record == "" && step.Delete == 0:
			return fmt.Errorf("step %d: one of record or delete is required", i)
		case step.NoMatch && step.Record == "":
			return fmt.Errorf("step %d: no_match applies to record steps only", i)
		}
	}

	return nil
}
