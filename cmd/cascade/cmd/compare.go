package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/pkg/cascade"
)

func init() {
	registerCommand(newCompareCmd)
}

func newCompareCmd(a *app) *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:   "compare --sheet FILE FROM TO",
		Short: "Classify the cost of a state change",
		Long: `Compare two states of a node and report the cheapest refresh that covers
the change: same, redraw, draw_pad or layout. States are names joined by
'|', e.g. "pressed|focused"; "default" is the empty state.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseState("from", args[0])
			if err != nil {
				return err
			}
			to, err := parseState("to", args[1])
			if err != nil {
				return err
			}
			s, err := a.open(&t)
			if err != nil {
				return err
			}
			verdict := cascade.CompareStates(s.node, from, to)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s: %s\n",
				s.node.Path(), from, to, cmpStyles[verdict.String()].Render(verdict.String()))
			return nil
		},
	}
	t.addFlags(cmd)
	return cmd
}
