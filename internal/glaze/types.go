// Package glaze converts structured glaze chemistry formulations into bounded
// visual parameters and qualitative text for image-generation prompting.
//
// The package is a composition of small pure transformations ("morphisms"):
// static reference catalogs feed the atmosphere modulator, maturation curve,
// and crystalline/flow resolver, whose contributions are blended and clamped
// by the compositor into a seven-field parameter vector. A text layer maps
// numeric bands to descriptor phrases. Everything is stateless and safe for
// concurrent callers.
package glaze

// Colorant identifies a metal-oxide colorant from the fixed supported set.
type Colorant string

const (
	ColorantIron      Colorant = "iron"
	ColorantCobalt    Colorant = "cobalt"
	ColorantCopper    Colorant = "copper"
	ColorantChrome    Colorant = "chrome"
	ColorantManganese Colorant = "manganese"
	ColorantVanadium  Colorant = "vanadium"
)

// Flux identifies a flux system from the fixed supported set.
type Flux string

const (
	FluxBoron         Flux = "boron"
	FluxAlkaline      Flux = "alkaline"
	FluxAlkalineEarth Flux = "alkaline_earth"
	FluxLead          Flux = "lead"
)

// Atmosphere is the kiln's chemical environment during firing.
type Atmosphere string

const (
	AtmosphereOxidation Atmosphere = "oxidation"
	AtmosphereReduction Atmosphere = "reduction"
	AtmosphereNeutral   Atmosphere = "neutral"
)

// ColorantProfile holds the immutable visual characteristics of one colorant.
// Warmth, Purity, BaseIntensity and BaseSaturation are 0-10 scores. The hue
// shifts are signed degree-like offsets applied (scaled) under reduction or
// oxidation; copper carries the largest magnitudes and is the only profile
// with AtmosphereSensitive set (the "copper exception").
type ColorantProfile struct {
	Identity            Colorant `yaml:"identity" json:"identity"`
	Description         string   `yaml:"description" json:"description"`
	Character           string   `yaml:"character" json:"character"`
	Warmth              float64  `yaml:"warmth" json:"warmth"`
	Purity              float64  `yaml:"purity" json:"purity"`
	BaseIntensity       float64  `yaml:"base_intensity" json:"base_intensity"`
	BaseSaturation      float64  `yaml:"base_saturation" json:"base_saturation"`
	ReductionShift      float64  `yaml:"reduction_shift" json:"reduction_shift"`
	OxidationShift      float64  `yaml:"oxidation_shift" json:"oxidation_shift"`
	AtmosphereSensitive bool     `yaml:"atmosphere_sensitive" json:"atmosphere_sensitive"`
	UnderOxidation      string   `yaml:"under_oxidation" json:"under_oxidation"`
	UnderReduction      string   `yaml:"under_reduction" json:"under_reduction"`
	TypicalPercentage   string   `yaml:"typical_percentage" json:"typical_percentage"`
}

// FluxProfile holds the immutable surface characteristics of one flux system.
// Reflectivity and RunningTendency are 0-10 scores; CrystalSuppression is a
// 0-1 factor damping crystalline growth on glossy surfaces.
type FluxProfile struct {
	Identity           Flux    `yaml:"identity" json:"identity"`
	Chemistry          string  `yaml:"chemistry" json:"chemistry"`
	Surface            string  `yaml:"surface" json:"surface"`
	Reflectivity       float64 `yaml:"reflectivity" json:"reflectivity"`
	RunningTendency    float64 `yaml:"running_tendency" json:"running_tendency"`
	CrystalSuppression float64 `yaml:"crystal_suppression" json:"crystal_suppression"`
	MeltingBehavior    string  `yaml:"melting_behavior" json:"melting_behavior"`
	ConeRange          string  `yaml:"cone_range" json:"cone_range"`
	Intent             string  `yaml:"intent" json:"intent"`
}

// Formulation is a complete glaze recipe as submitted by a caller. Low-fire
// "0x" cones are written as negative integers (cone 06 is -6).
type Formulation struct {
	Colorant   Colorant   `json:"colorant"`
	Percentage float64    `json:"colorant_percentage"`
	Flux       Flux       `json:"flux_type"`
	Atmosphere Atmosphere `json:"atmosphere"`
	Cone       int        `json:"cone"`
	Runs       bool       `json:"runs"`
}

// VisualParameters is the seven-field output vector. Every field is clamped
// to [0, 10] and rounded to one decimal by the compositor.
type VisualParameters struct {
	OpticalIntensity      float64 `json:"optical_intensity"`
	Saturation            float64 `json:"saturation"`
	Reflectivity          float64 `json:"reflectivity"`
	HueTemperature        float64 `json:"hue_temperature"`
	MaturationLevel       float64 `json:"maturation_level"`
	CrystallineDefinition float64 `json:"crystalline_definition"`
	SurfaceFlow           float64 `json:"surface_flow"`
}

// DescriptiveQualities carries one short phrase per visual parameter plus
// formulation-level flavor text.
type DescriptiveQualities struct {
	OpticalIntensity      string `json:"optical_intensity"`
	Saturation            string `json:"saturation"`
	Reflectivity          string `json:"reflectivity"`
	HueTemperature        string `json:"hue_temperature"`
	MaturationLevel       string `json:"maturation_level"`
	CrystallineDefinition string `json:"crystalline_definition"`
	SurfaceFlow           string `json:"surface_flow"`
	ColorantCharacter     string `json:"colorant_character"`
	AtmosphereEffect      string `json:"atmosphere_effect"`
	OverallImpression     string `json:"overall_impression"`
}

// Analysis is the full result of analyzing one formulation.
type Analysis struct {
	GlazeName        string               `json:"glaze_name"`
	Parameters       VisualParameters     `json:"visual_parameters"`
	Qualities        DescriptiveQualities `json:"descriptive_qualities"`
	SensoryIntention string               `json:"sensory_intention"`
}
