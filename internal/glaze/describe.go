package glaze

import (
	"fmt"
	"strings"
)

// band is one (threshold, phrase) pair. Band tables are evaluated top-down:
// the first band whose floor the value reaches wins. Every table ends with a
// floor-0 catch-all so the mapping is exhaustive and contiguous over [0, 10].
type band struct {
	floor  float64
	phrase string
}

var (
	opticalIntensityBands = []band{
		{8.0, "dark, concentrated optical quality"},
		{4.0, "balanced, medium-value optical quality"},
		{0, "bright, transparent, luminous quality"},
	}
	saturationBands = []band{
		{8.0, "intensely saturated, vivid coloration"},
		{4.0, "balanced, clear coloration"},
		{0, "subtly tinted, muted coloration"},
	}
	reflectivityBands = []band{
		{9.0, "glossy, mirror-like surface with strong light reflection"},
		{7.0, "glassy, smooth, luminous surface"},
		{4.0, "satin, semi-gloss surface"},
		{0, "matte, absorptive surface with diffuse light"},
	}
	hueTemperatureBands = []band{
		{7.0, "warm-toned, earthy character"},
		{3.0, "neutral, balanced coloration"},
		{0, "cool-toned, pure character"},
	}
	maturationBands = []band{
		{8.0, "fully matured, intentional finish"},
		{6.0, "well-matured, settled finish"},
		{0, "developing, slightly softer edges"},
	}
	crystallineBands = []band{
		{7.0, "pronounced crystalline bloom"},
		{4.0, "visible micro-crystalline texture"},
		{0, "smooth, undifferentiated surface"},
	}
	surfaceFlowBands = []band{
		{7.0, "dramatic running and pooling at edges"},
		{4.0, "gentle movement with softened transitions"},
		{0, "stable surface, stays where applied"},
	}
)

var atmosphereIntents = map[Atmosphere]string{
	AtmosphereReduction: "mysterious, concentrated, sultry",
	AtmosphereOxidation: "clear, bright, direct",
	AtmosphereNeutral:   "balanced, stable",
}

// describe resolves a parameter value against its band table.
func describe(bands []band, v float64) string {
	for _, b := range bands {
		if v >= b.floor {
			return b.phrase
		}
	}
	// Unreachable for in-range values; the last band floor is 0.
	return bands[len(bands)-1].phrase
}

func describeQualities(p VisualParameters, colorant ColorantProfile, flux FluxProfile, atm Atmosphere) DescriptiveQualities {
	return DescriptiveQualities{
		OpticalIntensity:      describe(opticalIntensityBands, p.OpticalIntensity),
		Saturation:            describe(saturationBands, p.Saturation),
		Reflectivity:          describe(reflectivityBands, p.Reflectivity),
		HueTemperature:        describe(hueTemperatureBands, p.HueTemperature),
		MaturationLevel:       describe(maturationBands, p.MaturationLevel),
		CrystallineDefinition: describe(crystallineBands, p.CrystallineDefinition),
		SurfaceFlow:           describe(surfaceFlowBands, p.SurfaceFlow),
		ColorantCharacter:     colorant.Character,
		AtmosphereEffect:      fmt.Sprintf("%s firing", atm),
		OverallImpression:     overallImpression(p),
	}
}

// overallImpression condenses the vector into a short mood phrase plus a
// maturity clause.
func overallImpression(p VisualParameters) string {
	var mood string
	switch {
	case p.OpticalIntensity > 7 && p.Saturation > 7:
		mood = "deep and saturated"
	case p.OpticalIntensity < 4 && p.Saturation < 5:
		mood = "bright and delicate"
	case p.Reflectivity > 8:
		mood = "luminous and reflective"
	case p.Reflectivity < 3:
		mood = "matte and earthy"
	default:
		mood = "balanced and intentional"
	}

	var maturity string
	switch {
	case p.MaturationLevel > 8:
		maturity = "fully developed"
	case p.MaturationLevel > 6:
		maturity = "well-matured"
	default:
		maturity = "developing"
	}
	return mood + ", " + maturity
}

// sensoryIntention combines the atmosphere intent, the flux intent, and the
// visual mood into one evocative sentence.
func sensoryIntention(p VisualParameters, flux FluxProfile, atm Atmosphere) string {
	return fmt.Sprintf("%s; %s — %s", atmosphereIntents[atm], flux.Intent, visualMood(p))
}

func visualMood(p VisualParameters) string {
	var value string
	switch {
	case p.OpticalIntensity > 7:
		value = "dark"
	case p.OpticalIntensity < 4:
		value = "light"
	default:
		value = "medium"
	}

	var sat string
	switch {
	case p.Saturation > 8:
		sat = "highly saturated"
	case p.Saturation < 4:
		sat = "muted"
	default:
		sat = "balanced"
	}
	return value + ", " + sat
}

// PromptEnhancement is the result of splicing a glaze's aesthetic into a
// caller-supplied base prompt. The base prompt is preserved verbatim; the
// bracketed clause is appended after it.
type PromptEnhancement struct {
	OriginalPrompt  string    `json:"original_prompt"`
	EnhancementText string    `json:"enhancement_text"`
	EnhancedPrompt  string    `json:"enhanced_prompt"`
	Analysis        *Analysis `json:"glaze_analysis"`
}

// EnhancePrompt appends a bracketed aesthetic clause, built from the
// formulation's descriptive qualities and sensory intention, to basePrompt.
// It fails under the same conditions as Analyze.
func EnhancePrompt(basePrompt string, f Formulation) (*PromptEnhancement, error) {
	analysis, err := Analyze(f)
	if err != nil {
		return nil, err
	}

	q := analysis.Qualities
	parts := []string{
		q.OpticalIntensity,
		q.Reflectivity,
		q.Saturation,
		q.HueTemperature,
		q.MaturationLevel,
		"feels " + analysis.SensoryIntention,
	}
	text := strings.Join(parts, "; ")

	return &PromptEnhancement{
		OriginalPrompt:  basePrompt,
		EnhancementText: text,
		EnhancedPrompt:  fmt.Sprintf("%s [glaze aesthetic: %s]", basePrompt, text),
		Analysis:        analysis,
	}, nil
}
