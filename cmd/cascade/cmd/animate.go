package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/style"
)

func init() {
	registerCommand(newAnimateCmd)
}

func newAnimateCmd(a *app) *cobra.Command {
	var (
		t        target
		from, to string
		steps    int
		extra    []string
	)
	cmd := &cobra.Command{
		Use:   "animate --sheet FILE --to STATE",
		Short: "Sample the transitions of a state change",
		Long: `Put a node in --from, switch it to --to and sample every transition the
change starts on a manual clock. Transitions come from the sheet's
transition descriptors; --prop adds main-part transitions timed by the
transition.* config keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			fromState, err := parseState("from", from)
			if err != nil {
				return err
			}
			toState, err := parseState("to", to)
			if err != nil {
				return err
			}
			var props []style.Prop
			if len(extra) > 0 {
				if props, err = parseProps(extra); err != nil {
					return err
				}
			}
			s, err := a.open(&t)
			if err != nil {
				return err
			}

			s.node.SetActiveState(fromState)
			verdict := s.eng.SetState(s.node, toState)
			for _, prop := range props {
				if !running(s.eng, s.node, style.PartMain, prop) {
					s.eng.CreateTransition(s.node, prop, style.PartMain, fromState, toState, a.cfg.TransitionSpec())
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s -> %s: %s\n", s.node.Path(), fromState, toState,
				cmpStyles[verdict.String()].Render(verdict.String()))

			var tracks []cascade.TransitionInfo
			var total time.Duration
			for _, tr := range s.eng.ActiveTransitions() {
				if tr.Widget != s.node {
					continue
				}
				tracks = append(tracks, tr)
				total = max(total, tr.Spec.Delay+tr.Spec.Duration)
			}
			if len(tracks) == 0 {
				fmt.Fprintln(out, dimStyle.Render("no transitions"))
				return nil
			}

			headers := []string{"TIME"}
			for _, tr := range tracks {
				headers = append(headers, fmt.Sprintf("%s %s", tr.Part, tr.Prop))
			}
			sample := func(at time.Duration) []string {
				row := []string{at.String()}
				for _, tr := range tracks {
					row = append(row, formatValue(tr.Prop, cascade.GetProp(s.node, tr.Part, tr.Prop)))
				}
				return row
			}

			rows := [][]string{sample(0)}
			var elapsed time.Duration
			for i := 1; i <= steps; i++ {
				next := total * time.Duration(i) / time.Duration(steps)
				s.advance(next - elapsed)
				elapsed = next
				rows = append(rows, sample(elapsed))
			}
			renderTable(out, headers, rows)
			a.log.Debug().Int("tracks", len(tracks)).Dur("total", total).
				Int("left", len(s.eng.ActiveTransitions())).Msg("Animation sampled")
			return nil
		},
	}
	t.addFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "default", "state before the change")
	cmd.Flags().StringVar(&to, "to", "", "state after the change")
	cmd.Flags().IntVar(&steps, "steps", 4, "samples after the start")
	cmd.Flags().StringSliceVar(&extra, "prop", nil, "extra main-part properties to animate")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func running(eng *cascade.Engine, w cascade.Widget, part style.Part, prop style.Prop) bool {
	for _, tr := range eng.ActiveTransitions() {
		if tr.Widget == w && tr.Part == part && tr.Prop == prop {
			return true
		}
	}
	return false
}
