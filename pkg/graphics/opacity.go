package graphics

// Opacity levels used by opacity properties (0 transparent, 255 opaque).
const (
	OpaTransp int32 = 0
	Opa50     int32 = 127
	OpaCover  int32 = 255
)

// Coordinate specials understood by size properties.
const (
	// CoordMax is the largest coordinate a size property can carry.
	CoordMax int32 = (1 << 29) - 1
	// SizeContent asks the layout engine to size to the content.
	SizeContent int32 = CoordMax + 1
	// ZoomNone is the identity value of the transform zoom property.
	ZoomNone int32 = 256
)

// ClampOpa limits v to [OpaTransp, OpaCover].
func ClampOpa(v int32) int32 {
	if v < OpaTransp {
		return OpaTransp
	}
	if v > OpaCover {
		return OpaCover
	}
	return v
}
