package glaze

import (
	"math"
	"strings"
)

// maturationSaturationBoost is the maximum extra saturation (as a fraction
// of the colorant's base saturation) contributed by a fully matured firing.
const maturationSaturationBoost = 0.3

// Compose runs the full morphism composition for one formulation and
// returns the seven-parameter vector. It validates inputs first, delegates
// catalog and cone failures unchanged, and is the single point where every
// output is clamped to [0, 10] and rounded to one decimal. It never returns
// a partially populated vector.
func Compose(f Formulation) (VisualParameters, error) {
	if err := validate(f); err != nil {
		return VisualParameters{}, err
	}
	colorant, err := ColorantProfileFor(f.Colorant)
	if err != nil {
		return VisualParameters{}, err
	}
	flux, err := FluxProfileFor(f.Flux)
	if err != nil {
		return VisualParameters{}, err
	}

	maturation, err := maturationLevel(f.Cone)
	if err != nil {
		return VisualParameters{}, err
	}
	crystalline, err := crystallineDefinition(flux, f.Cone)
	if err != nil {
		return VisualParameters{}, err
	}

	intensity, saturation, hue := modulateAtmosphere(colorant, f.Atmosphere, f.Percentage)
	saturation += colorant.BaseSaturation * (maturation / 10.0) * maturationSaturationBoost

	return VisualParameters{
		OpticalIntensity:      finalize(intensity),
		Saturation:            finalize(saturation),
		Reflectivity:          finalize(flux.Reflectivity),
		HueTemperature:        finalize(hue),
		MaturationLevel:       finalize(maturation),
		CrystallineDefinition: finalize(crystalline),
		SurfaceFlow:           finalize(surfaceFlow(flux, f.Runs)),
	}, nil
}

// Analyze composes the parameter vector and derives the qualitative layer:
// glaze name, per-parameter descriptors, and the sensory intention sentence.
func Analyze(f Formulation) (*Analysis, error) {
	params, err := Compose(f)
	if err != nil {
		return nil, err
	}
	// Lookups cannot fail after a successful Compose.
	colorant, _ := ColorantProfileFor(f.Colorant)
	flux, _ := FluxProfileFor(f.Flux)

	return &Analysis{
		GlazeName:        glazeName(f),
		Parameters:       params,
		Qualities:        describeQualities(params, colorant, flux, f.Atmosphere),
		SensoryIntention: sensoryIntention(params, flux, f.Atmosphere),
	}, nil
}

func validate(f Formulation) error {
	if f.Percentage <= 0 {
		return &InvalidFormulationError{field: "colorant_percentage", reason: "must be greater than zero"}
	}
	if f.Percentage > 100 {
		return &InvalidFormulationError{field: "colorant_percentage", reason: "cannot exceed 100"}
	}
	if _, ok := atmosphereEffects[f.Atmosphere]; !ok {
		return &InvalidFormulationError{field: "atmosphere", reason: "must be oxidation, reduction, or neutral"}
	}
	return nil
}

func glazeName(f Formulation) string {
	return capitalize(string(f.Atmosphere)) + " " + capitalize(string(f.Colorant))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// finalize clamps to [0, 10] then rounds to one decimal.
func finalize(v float64) float64 {
	v = math.Max(0, math.Min(10, v))
	return math.Round(v*10) / 10
}
