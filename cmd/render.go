package cmd

import (
	"fmt"
	"strconv"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fmtkit/bracefmt/pkg/format"
)

type renderOptions struct {
	lenient     bool
	stringsOnly bool
	argv        string
}

func addRenderFlags(fs *pflag.FlagSet, opts *renderOptions) {
	fs.BoolVar(&opts.lenient, "lenient", false, "render malformed fields inline instead of failing")
	fs.BoolVar(&opts.stringsOnly, "strings", false, "treat every argument as a string")
	fs.StringVar(&opts.argv, "argv", "", "extra arguments as one shell-quoted string")
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render TEMPLATE [ARG...]",
		Short: "Format a template against positional arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[1:]
			if opts.argv != "" {
				extra, err := shellquote.Split(opts.argv)
				if err != nil {
					return errors.Wrap(err, "splitting --argv")
				}
				raw = append(raw, extra...)
			}
			vals := make([]interface{}, len(raw))
			for i, a := range raw {
				if opts.stringsOnly {
					vals[i] = a
				} else {
					vals[i] = inferArg(a)
				}
			}
			log.Debugf("rendering %q with %d argument(s)", args[0], len(vals))
			f := format.Formatter{Lenient: opts.lenient}
			out, err := f.Format(args[0], vals...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addRenderFlags(cmd.Flags(), opts)
	return cmd
}

// inferArg maps a command line token onto the richest kind it parses
// as, the same way the corpus loader treats YAML scalars.
func inferArg(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
