// Package config loads locator scenarios from TOML files.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/locator/locator"
)

// Sentinel errors returned by Validate.
var (
	// ErrMissingGroup indicates that group1 or group2 is absent or empty.
	ErrMissingGroup = errors.New("config: both group1 and group2 must be non-empty")

	// ErrEmptyQuery indicates that no query name was given.
	ErrEmptyQuery = errors.New("config: query name is empty")
)

// Scenario is one locator run: two groups and the group1 name to look up.
type Scenario struct {
	Query             string        `toml:"query"`
	LexicographicTies bool          `toml:"lexicographic_ties"`
	Group1            locator.Group `toml:"group1"`
	Group2            locator.Group `toml:"group2"`
}

// Options converts the scenario switches into locator options.
func (s Scenario) Options() []locator.Option {
	var opts []locator.Option
	if s.LexicographicTies {
		opts = append(opts, locator.WithLexicographicTies())
	}

	return opts
}

// ValidateGroups checks that both groups have members.
func (s Scenario) ValidateGroups() error {
	if len(s.Group1) == 0 || len(s.Group2) == 0 {
		return fmt.Errorf("%w: group1=%d group2=%d", ErrMissingGroup, len(s.Group1), len(s.Group2))
	}

	return nil
}

// Validate checks that both groups have members and a query is set.
func (s Scenario) Validate() error {
	if err := s.ValidateGroups(); err != nil {
		return err
	}
	if s.Query == "" {
		return ErrEmptyQuery
	}

	return nil
}

// LoadFromFile decodes the scenario at path. Undecoded keys are rejected so
// that a misspelled table name does not silently produce an empty group.
// The returned scenario is not validated; flags may still fill in the query.
func LoadFromFile(path string) (Scenario, error) {
	var s Scenario

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, errgo.Wrap(err, "failed to parse scenario file")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, errgo.Wrap(fmt.Errorf("unknown keys %v", undecoded), "failed to parse scenario file")
	}

	return s, nil
}
