package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/core"
	"github.com/go-drift/cascade/pkg/sheet"
	"github.com/go-drift/cascade/pkg/style"
	drifttest "github.com/go-drift/cascade/pkg/testing"
)

// target is the sheet and node selection shared by the inspecting commands.
type target struct {
	sheetPath string
	nodePath  string
}

func (t *target) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.sheetPath, "sheet", "s", "", "style sheet (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&t.nodePath, "node", "n", "", "node name or path in the sheet's tree (default: the root)")
	_ = cmd.MarkFlagRequired("sheet")
}

// session is a loaded sheet bound to its tree, driven by a manual clock.
type session struct {
	clock *drifttest.FakeClock
	sched *animation.Scheduler
	eng   *cascade.Engine
	sheet *sheet.Sheet
	root  *core.Node
	node  *core.Node
}

func (a *app) open(t *target) (*session, error) {
	sh, err := sheet.Load(t.sheetPath)
	if err != nil {
		return nil, err
	}
	clk := drifttest.NewFakeClock()
	s := &session{
		clock: clk,
		sched: animation.NewScheduler(clk),
		sheet: sh,
		root:  sh.BuildTree(),
	}
	s.eng = a.cfg.NewEngine(s.sched, &a.log)
	s.eng.Mount(s.root)
	if err := sh.ApplyTree(s.eng, s.root); err != nil {
		return nil, err
	}

	s.node = s.root
	if t.nodePath != "" {
		if s.node = s.root.Find(t.nodePath); s.node == nil {
			return nil, fmt.Errorf("no node %q in %s", t.nodePath, t.sheetPath)
		}
	}
	a.log.Debug().Str("sheet", t.sheetPath).Str("node", s.node.Path()).
		Int("bindings", s.node.StyleList().Len()).Msg("Sheet loaded")
	return s, nil
}

// advance moves the clock by d and steps the transitions once.
func (s *session) advance(d time.Duration) {
	s.clock.Advance(d)
	s.sched.Step()
}

func parseState(flag, value string) (style.State, error) {
	st, err := style.ParseState(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", flag, err)
	}
	return st, nil
}

func parseProps(names []string) ([]style.Prop, error) {
	if len(names) == 0 {
		return style.Props(), nil
	}
	props := make([]style.Prop, 0, len(names))
	for _, name := range names {
		p, ok := style.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown property %q", name)
		}
		props = append(props, p)
	}
	return props, nil
}
