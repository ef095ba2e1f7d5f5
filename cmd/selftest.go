package cmd

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fmtkit/bracefmt/internal/corpus"
)

func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest [SUITE...]",
		Short: "Run formatting test suites",
		Long: "selftest runs the built-in corpus, or the YAML suite files and\n" +
			"directories given as arguments, and reports every mismatch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := collectSuites(args)
			if err != nil {
				return err
			}
			failed, total := 0, 0
			for _, s := range suites {
				rep := corpus.Run(s)
				total += rep.Total
				failed += rep.Failed()
				if rep.OK() {
					log.Infof("%s: %d cases ok", rep.Suite, rep.Total)
					continue
				}
				log.Errorf("%s: %d of %d cases failed", rep.Suite, rep.Failed(), rep.Total)
				for _, f := range rep.Failures {
					log.Errorf("  %s", f)
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d cases failed", failed, total)
			}
			log.Infof("all %d cases passed", total)
			return nil
		},
	}
}

func collectSuites(paths []string) ([]*corpus.Suite, error) {
	if len(paths) == 0 {
		return corpus.Builtin()
	}
	var suites []*corpus.Suite
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrap(err, "locating suite")
		}
		if info.IsDir() {
			ss, err := corpus.LoadDir(p)
			if err != nil {
				return nil, err
			}
			suites = append(suites, ss...)
		} else {
			s, err := corpus.Load(p)
			if err != nil {
				return nil, err
			}
			suites = append(suites, s)
		}
	}
	return suites, nil
}
