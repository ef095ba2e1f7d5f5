package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fmtkit/bracefmt/pkg/format"
)

func newCheckCmd() *cobra.Command {
	var nargs int
	cmd := &cobra.Command{
		Use:   "check TEMPLATE",
		Short: "Validate a template without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := format.Check(args[0], nargs); err != nil {
				return err
			}
			log.Infof("template ok against %d argument(s)", nargs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&nargs, "nargs", "n", 0, "number of arguments the template will receive")
	return cmd
}
