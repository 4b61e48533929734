// Command locate runs the greedy target locator over a TOML scenario file
// and prints the match of one group1 member, or the whole match set.
//
//	locate --scenario squads.toml --name A
//	locate --scenario squads.toml --all --verbose
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/locator/internal/config"
	"github.com/katalvlaran/locator/locator"
)

var errNoScenario = errors.New("locate: --scenario is required")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("locate failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("locate", pflag.ContinueOnError)
	var scenarioPath = fs.String("scenario", "", "path to scenario TOML file (required)")
	var name = fs.String("name", "", "group1 member to look up (overrides scenario query)")
	var all = fs.Bool("all", false, "print the full match set instead of one target")
	var lexTies = fs.Bool("lexicographic-ties", false, "order equal distances by name")
	var verbose = fs.Bool("verbose", false, "trace every accepted and rejected pair")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *scenarioPath == "" {
		return errNoScenario
	}

	s, err := config.LoadFromFile(*scenarioPath)
	if err != nil {
		return errgo.Wrap(err, "failed to load scenario")
	}

	if *name != "" {
		s.Query = *name
	}
	if *lexTies {
		s.LexicographicTies = true
	}
	// the full match set needs no query
	if *all {
		err = s.ValidateGroups()
	} else {
		err = s.Validate()
	}
	if err != nil {
		return err
	}

	opts := append(s.Options(), locator.WithLogger(log.Logger))
	log.Debug().
		Int("group1", len(s.Group1)).
		Int("group2", len(s.Group2)).
		Str("query", s.Query).
		Msg("scenario loaded")

	if *all {
		m := locator.Match(s.Group1, s.Group2, opts...)
		for _, from := range m.Names() {
			to := m[from]
			p := s.Group2[to]
			fmt.Fprintf(stdout, "%s %s %d %d\n", from, to, p.X, p.Y)
		}

		return nil
	}

	t, err := locator.Locate(s.Group1, s.Group2, s.Query, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %d %d\n", t.Name, t.X, t.Y)

	return nil
}
