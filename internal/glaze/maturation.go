package glaze

// Supported firing range. Low-fire "0x" cones are written as negative
// integers, so cone 06 is -6.
const (
	ConeMin = -6
	ConeMax = 14
)

// coneAnchor is one point on a piecewise-linear curve over cone temperature.
type coneAnchor struct {
	cone  int
	value float64
}

// maturationAnchors define the maturation curve: immature below cone 2,
// balanced around cone 5-6, fully mature from cone 10 up. The anchor values
// are non-decreasing, which makes the interpolated curve monotonic.
var maturationAnchors = []coneAnchor{
	{ConeMin, 3.0},
	{2, 4.0},
	{5, 6.8},
	{6, 7.0},
	{10, 9.5},
	{ConeMax, 10.0},
}

// maturationLevel maps a firing cone to a 0-10 maturation score. Cones
// outside [ConeMin, ConeMax] fail with OutOfRangeError rather than
// extrapolating.
func maturationLevel(cone int) (float64, error) {
	return interpolateCone(maturationAnchors, cone)
}

// interpolateCone evaluates a piecewise-linear anchor curve at the given
// cone, interpolating between neighboring anchors.
func interpolateCone(anchors []coneAnchor, cone int) (float64, error) {
	if cone < anchors[0].cone || cone > anchors[len(anchors)-1].cone {
		return 0, &OutOfRangeError{cone: cone, min: anchors[0].cone, max: anchors[len(anchors)-1].cone}
	}
	for i := 1; i < len(anchors); i++ {
		lo, hi := anchors[i-1], anchors[i]
		if cone > hi.cone {
			continue
		}
		span := float64(hi.cone - lo.cone)
		t := float64(cone-lo.cone) / span
		return lo.value + t*(hi.value-lo.value), nil
	}
	return anchors[len(anchors)-1].value, nil
}
