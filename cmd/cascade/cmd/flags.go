package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/pkg/cascade"
)

func init() {
	registerCommand(newFlagsCmd)
}

func newFlagsCmd(a *app) *cobra.Command {
	var (
		t     target
		state string
	)
	cmd := &cobra.Command{
		Use:   "flags --sheet FILE",
		Short: "Show the cache flags of a node",
		Long: `Compute the cache flags of a node's main part, in the node's own state or
in --state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(&t)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("state") {
				st, err := parseState("state", state)
				if err != nil {
					return err
				}
				s.node.SetActiveState(st)
			}

			flags := cascade.EnsureCache(s.node)
			var rows [][]string
			for _, f := range cascade.AllCacheFlags() {
				rows = append(rows, []string{f.String(), check(flags.Has(f))})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s in %s\n", s.node.Path(), s.node.State())
			renderTable(out, []string{"FLAG", "SET"}, rows)
			return nil
		},
	}
	t.addFlags(cmd)
	cmd.Flags().StringVar(&state, "state", "", "state to compute the flags in (default: the node's state)")
	return cmd
}
