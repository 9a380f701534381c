package style

import (
	"fmt"
	"math/bits"
	"strings"
)

// Part identifies a sub-region of a widget that can be styled on its own.
type Part uint8

const (
	PartMain Part = iota
	PartScrollbar
	PartIndicator
	PartKnob
	PartSelected
	PartItems
	PartTicks
	PartCursor
	// PartCustomFirst is the first id free for widget-specific parts.
	PartCustomFirst Part = 0x10
)

var partNames = map[Part]string{
	PartMain:      "main",
	PartScrollbar: "scrollbar",
	PartIndicator: "indicator",
	PartKnob:      "knob",
	PartSelected:  "selected",
	PartItems:     "items",
	PartTicks:     "ticks",
	PartCursor:    "cursor",
}

func (p Part) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return fmt.Sprintf("part(%d)", uint8(p))
}

// ParsePart accepts a part name ("main", "knob", ...).
func ParsePart(s string) (Part, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range partNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown part %q", s)
}

// PartSelector is either a single part or any part.
type PartSelector struct {
	part Part
	any  bool
}

// AnyPart matches every part.
var AnyPart = PartSelector{any: true}

// OnPart selects exactly p.
func OnPart(p Part) PartSelector {
	return PartSelector{part: p}
}

// IsAny reports whether the selector is the wildcard.
func (s PartSelector) IsAny() bool {
	return s.any
}

// Part returns the selected part; ok is false for the wildcard.
func (s PartSelector) Part() (p Part, ok bool) {
	return s.part, !s.any
}

// Matches reports whether the selector covers p.
func (s PartSelector) Matches(p Part) bool {
	return s.any || s.part == p
}

func (s PartSelector) String() string {
	if s.any {
		return "any"
	}
	return s.part.String()
}

// ParsePartSelector accepts "any" or a part name.
func ParsePartSelector(s string) (PartSelector, error) {
	if strings.EqualFold(strings.TrimSpace(s), "any") {
		return AnyPart, nil
	}
	p, err := ParsePart(s)
	if err != nil {
		return PartSelector{}, err
	}
	return OnPart(p), nil
}

// State is a bitmask of widget conditions.
type State uint16

const (
	StateDefault  State = 0
	StateChecked  State = 0x0001
	StateFocused  State = 0x0002
	StateFocusKey State = 0x0004
	StateEdited   State = 0x0008
	StateHovered  State = 0x0010
	StatePressed  State = 0x0020
	StateScrolled State = 0x0040
	StateDisabled State = 0x0080
	StateUser1    State = 0x1000
	StateUser2    State = 0x2000
	StateUser3    State = 0x4000
	StateUser4    State = 0x8000
)

var stateNames = []struct {
	bit  State
	name string
}{
	{StateChecked, "checked"},
	{StateFocused, "focused"},
	{StateFocusKey, "focus_key"},
	{StateEdited, "edited"},
	{StateHovered, "hovered"},
	{StatePressed, "pressed"},
	{StateScrolled, "scrolled"},
	{StateDisabled, "disabled"},
	{StateUser1, "user1"},
	{StateUser2, "user2"},
	{StateUser3, "user3"},
	{StateUser4, "user4"},
}

func (s State) String() string {
	if s == StateDefault {
		return "default"
	}
	var parts []string
	rest := s
	for _, n := range stateNames {
		if s&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%04x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseState accepts "default" or names joined by '|' or ','
// ("pressed|focused").
func ParseState(s string) (State, error) {
	var out State
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name := strings.ToLower(strings.TrimSpace(field))
		if name == "" || name == "default" {
			continue
		}
		found := false
		for _, n := range stateNames {
			if n.name == name {
				out |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown state %q", name)
		}
	}
	return out, nil
}

// Applies reports whether a binding with this mask is eligible while the
// widget is in active. The default mask always applies; any other mask
// applies when at least one of its bits is active.
func (s State) Applies(active State) bool {
	return s == StateDefault || s&active != 0
}

// exactMatch outranks any partial match.
const exactMatch = 1 << 8

// Specificity ranks an applicable mask against active: an exact match ranks
// highest, otherwise the number of shared bits. The default mask ranks 0
// unless active is also default.
func (s State) Specificity(active State) int {
	if s == active {
		return exactMatch
	}
	return bits.OnesCount16(uint16(s & active))
}

// StateSelector is either a state mask or any state.
type StateSelector struct {
	mask State
	any  bool
}

// AnyState matches every mask.
var AnyState = StateSelector{any: true}

// InState selects bindings whose mask equals s.
func InState(s State) StateSelector {
	return StateSelector{mask: s}
}

// IsAny reports whether the selector is the wildcard.
func (s StateSelector) IsAny() bool {
	return s.any
}

// Matches reports whether the selector covers a binding mask.
func (s StateSelector) Matches(mask State) bool {
	return s.any || s.mask == mask
}

func (s StateSelector) String() string {
	if s.any {
		return "any"
	}
	return s.mask.String()
}
