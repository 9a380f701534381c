package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/style"
)

// padAll expands to the four outer paddings.
const padAll = "pad_all"

func decodeBlock(raw map[string]any) (*style.Style, error) {
	s := style.New()
	for name, v := range raw {
		if name == padAll {
			n, err := toNum(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			s.SetPadAll(n)
			continue
		}
		prop, ok := style.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown property %q", name)
		}
		val, err := decodeValue(prop, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		s.Set(prop, val)
	}
	return s, nil
}

func decodeValue(prop style.Prop, raw any) (style.Value, error) {
	if prop == style.PropTransition {
		desc, err := decodeTransition(raw)
		if err != nil {
			return style.Value{}, err
		}
		return style.Ref(desc), nil
	}
	switch prop.Kind() {
	case style.KindColor:
		c, err := toColor(raw)
		return style.ColorValue(c), err
	case style.KindRef:
		s, ok := raw.(string)
		if !ok {
			return style.Value{}, fmt.Errorf("want a string, got %T", raw)
		}
		return style.Ref(s), nil
	default:
		n, err := toNum(raw)
		return style.Num(n), err
	}
}

// toNum accepts integers, integral floats, booleans, "content" and
// percentages of full opacity ("50%").
func toNum(raw any) (int32, error) {
	if i, ok := toInt64(raw); ok {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, fmt.Errorf("%d out of range", i)
		}
		return int32(i), nil
	}
	switch v := raw.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int32(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "content" {
			return graphics.SizeContent, nil
		}
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			p, err := strconv.Atoi(pct)
			if err != nil || p < 0 || p > 100 {
				return 0, fmt.Errorf("invalid percentage %q", v)
			}
			return graphics.OpaCover * int32(p) / 100, nil
		}
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", v)
		}
		return int32(n), nil
	}
	return 0, fmt.Errorf("want a number, got %T", raw)
}

func toColor(raw any) (graphics.Color, error) {
	if s, ok := raw.(string); ok {
		return graphics.ParseColor(s)
	}
	if i, ok := toInt64(raw); ok && i >= 0 && i <= math.MaxUint32 {
		return graphics.Color(uint32(i)), nil
	}
	return 0, fmt.Errorf("want a color, got %v", raw)
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// toDuration accepts Go duration strings or a count of milliseconds.
func toDuration(raw any) (time.Duration, error) {
	if raw == nil {
		return 0, nil
	}
	if s, ok := raw.(string); ok {
		return time.ParseDuration(s)
	}
	if ms, ok := toInt64(raw); ok {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return 0, fmt.Errorf("want a duration, got %T", raw)
}

func decodeTransition(raw any) (*style.TransitionDesc, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("want a table, got %T", raw)
	}
	desc := &style.TransitionDesc{}
	for key, v := range m {
		var err error
		switch key {
		case "props":
			desc.Props, err = decodePropList(v)
		case "duration":
			desc.Duration, err = toDuration(v)
		case "delay":
			desc.Delay, err = toDuration(v)
		case "path":
			name, _ := v.(string)
			curve, ok := animation.CurveByName(name)
			if !ok {
				err = fmt.Errorf("unknown path %v (want one of %s)", v, strings.Join(animation.CurveNames(), ", "))
			}
			desc.Path = curve
		default:
			err = fmt.Errorf("unknown key")
		}
		if err != nil {
			return nil, fmt.Errorf("transition %s: %w", key, err)
		}
	}
	if len(desc.Props) == 0 {
		return nil, fmt.Errorf("transition lists no props")
	}
	if desc.Duration < 0 || desc.Delay < 0 {
		return nil, fmt.Errorf("transition times must not be negative")
	}
	return desc, nil
}

func decodePropList(raw any) ([]style.Prop, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("want a list, got %T", raw)
	}
	props := make([]style.Prop, 0, len(list))
	for _, item := range list {
		name, _ := item.(string)
		prop, ok := style.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown property %v", item)
		}
		props = append(props, prop)
	}
	return props, nil
}
