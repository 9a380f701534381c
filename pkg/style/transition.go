package style

import (
	"fmt"
	"strings"
	"time"
)

// TransitionDesc lists the properties that animate when a widget enters a
// state where the describing block applies. Store it in a block with
// [Style.SetTransition]; it is matched by pointer identity.
type TransitionDesc struct {
	Props    []Prop
	Duration time.Duration
	Delay    time.Duration
	// Path shapes progress; nil means linear.
	Path func(float64) float64
}

func (d *TransitionDesc) String() string {
	names := make([]string, len(d.Props))
	for i, p := range d.Props {
		names[i] = p.String()
	}
	return fmt.Sprintf("transition[%s %v+%v]", strings.Join(names, ","), d.Duration, d.Delay)
}
