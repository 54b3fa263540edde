package glaze

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed colorants.yaml
var colorantsYAML []byte

//go:embed fluxes.yaml
var fluxesYAML []byte

type colorantsFile struct {
	Colorants []ColorantProfile `yaml:"colorants"`
}

type fluxesFile struct {
	Fluxes []FluxProfile `yaml:"fluxes"`
}

// The catalogs are decoded once at process start and never mutated. All
// access goes through the accessor functions below so the fixed-enumeration
// invariant is enforced at a single boundary.
var (
	colorantCatalog []ColorantProfile
	fluxCatalog     []FluxProfile
	colorantIndex   map[Colorant]int
	fluxIndex       map[Flux]int
)

func init() {
	var cf colorantsFile
	if err := yaml.Unmarshal(colorantsYAML, &cf); err != nil {
		panic(fmt.Sprintf("glaze: parse embedded colorants.yaml: %v", err))
	}
	var ff fluxesFile
	if err := yaml.Unmarshal(fluxesYAML, &ff); err != nil {
		panic(fmt.Sprintf("glaze: parse embedded fluxes.yaml: %v", err))
	}
	colorantCatalog = cf.Colorants
	fluxCatalog = ff.Fluxes
	colorantIndex = make(map[Colorant]int, len(colorantCatalog))
	for i, p := range colorantCatalog {
		colorantIndex[p.Identity] = i
	}
	fluxIndex = make(map[Flux]int, len(fluxCatalog))
	for i, p := range fluxCatalog {
		fluxIndex[p.Identity] = i
	}
}

// ColorantProfileFor returns the profile for the given colorant identity,
// or an UnknownIdentifierError when the identity is outside the supported set.
func ColorantProfileFor(c Colorant) (ColorantProfile, error) {
	i, ok := colorantIndex[c]
	if !ok {
		return ColorantProfile{}, &UnknownIdentifierError{
			kind:  "colorant",
			name:  string(c),
			known: colorantNames(),
		}
	}
	return colorantCatalog[i], nil
}

// FluxProfileFor returns the profile for the given flux identity, or an
// UnknownIdentifierError when the identity is outside the supported set.
func FluxProfileFor(f Flux) (FluxProfile, error) {
	i, ok := fluxIndex[f]
	if !ok {
		return FluxProfile{}, &UnknownIdentifierError{
			kind:  "flux",
			name:  string(f),
			known: fluxNames(),
		}
	}
	return fluxCatalog[i], nil
}

// Colorants returns all colorant profiles in catalog declaration order.
func Colorants() []ColorantProfile {
	out := make([]ColorantProfile, len(colorantCatalog))
	copy(out, colorantCatalog)
	return out
}

// Fluxes returns all flux profiles in catalog declaration order.
func Fluxes() []FluxProfile {
	out := make([]FluxProfile, len(fluxCatalog))
	copy(out, fluxCatalog)
	return out
}

func colorantNames() []string {
	names := make([]string, len(colorantCatalog))
	for i, p := range colorantCatalog {
		names[i] = string(p.Identity)
	}
	return names
}

func fluxNames() []string {
	names := make([]string, len(fluxCatalog))
	for i, p := range fluxCatalog {
		names[i] = string(p.Identity)
	}
	return names
}
