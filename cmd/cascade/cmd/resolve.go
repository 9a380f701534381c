package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/style"
)

func init() {
	registerCommand(newResolveCmd)
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		t       target
		state   string
		part    string
		onlySet bool
	)
	cmd := &cobra.Command{
		Use:   "resolve --sheet FILE [prop...]",
		Short: "Resolve properties of a node",
		Long: `Resolve properties of a node of the sheet's tree, in the node's own state
or in --state. Without property names every property is listed; --set
hides properties that resolve to their default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := parseProps(args)
			if err != nil {
				return err
			}
			p, err := style.ParsePart(part)
			if err != nil {
				return fmt.Errorf("--part: %w", err)
			}
			s, err := a.open(&t)
			if err != nil {
				return err
			}
			st := s.node.State()
			if cmd.Flags().Changed("state") {
				if st, err = parseState("state", state); err != nil {
					return err
				}
			}

			var rows [][]string
			for _, prop := range props {
				v := cascade.GetPropInState(s.node, p, prop, st)
				if onlySet && v.Equal(prop.Default()) {
					continue
				}
				rows = append(rows, []string{prop.String(), formatValue(prop, v)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s in %s\n", s.node.Path(), p, st)
			renderTable(out, []string{"PROPERTY", "VALUE"}, rows)
			return nil
		},
	}
	t.addFlags(cmd)
	cmd.Flags().StringVar(&state, "state", "", `state to resolve in, e.g. "pressed|focused" (default: the node's state)`)
	cmd.Flags().StringVarP(&part, "part", "p", "main", "part to resolve")
	cmd.Flags().BoolVar(&onlySet, "set", false, "hide properties that resolve to their default")
	return cmd
}
