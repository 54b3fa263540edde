package glaze

import "math"

// atmosphereEffect fixes the intensity anchor and saturation scale for one
// kiln atmosphere. Reduction darkens and saturates; oxidation brightens and
// mutes; neutral is the unmodified midpoint.
type atmosphereEffect struct {
	intensity       float64
	saturationScale float64
}

var atmosphereEffects = map[Atmosphere]atmosphereEffect{
	AtmosphereReduction: {intensity: 8.5, saturationScale: 1.3},
	AtmosphereOxidation: {intensity: 4.0, saturationScale: 0.7},
	AtmosphereNeutral:   {intensity: 5.5, saturationScale: 1.0},
}

// referencePercentage is the colorant amount that yields a full-strength
// saturation multiplier. Typical recipes run 0.5-2% for cobalt, 5-15% for
// the weaker oxides.
const referencePercentage = 8.0

// hueShiftScale converts a profile's degree-like hue shift into the 0-10
// hue-temperature scale.
const hueShiftScale = 1.0 / 20.0

// modulateAtmosphere applies the atmosphere morphism to one colorant:
// it returns the optical intensity anchor, the atmosphere/amount-scaled
// saturation, and the shifted hue temperature.
//
// Saturation is intentionally unclamped here; the compositor is the single
// clamp point, so intermediate values may exceed 10.
//
// Hue shifts are profile data rather than identity branches. Copper is the
// only atmosphere-sensitive colorant and carries the largest shifts
// (reduction toward red, oxidation toward green) — the copper exception.
func modulateAtmosphere(p ColorantProfile, atm Atmosphere, percentage float64) (intensity, saturation, hue float64) {
	eff := atmosphereEffects[atm]

	amountFactor := 0.3 + math.Min(percentage/referencePercentage, 1.5)*0.7
	saturation = p.BaseSaturation * eff.saturationScale * amountFactor

	var shift float64
	switch atm {
	case AtmosphereReduction:
		shift = p.ReductionShift
	case AtmosphereOxidation:
		shift = p.OxidationShift
	}
	hue = p.Warmth + shift*hueShiftScale

	return eff.intensity, saturation, hue
}
