package cmd

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	verbose bool
	quiet   bool
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracefmt",
		Short: "Render brace-style format templates",
		Long: "bracefmt formats templates written in the Python str.format\n" +
			"mini-language against positional arguments, and runs table-driven\n" +
			"suites validating the engine.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetFormatter(&log.TextFormatter{
				DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
			})
			switch {
			case rootFlags.quiet:
				log.SetLevel(log.ErrorLevel)
			case rootFlags.verbose:
				log.SetLevel(log.DebugLevel)
			default:
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "only report errors")
	cmd.AddCommand(newRenderCmd(), newCheckCmd(), newSelftestCmd())
	return cmd
}

// Execute runs the CLI and exits the process on failure.
func Execute(ctx context.Context, version string) {
	if err := newRootCmd(version).ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
