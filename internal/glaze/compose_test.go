package glaze_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"

	"glazier/internal/glaze"
)

var allColorants = []glaze.Colorant{
	glaze.ColorantIron, glaze.ColorantCobalt, glaze.ColorantCopper,
	glaze.ColorantChrome, glaze.ColorantManganese, glaze.ColorantVanadium,
}

var allFluxes = []glaze.Flux{
	glaze.FluxBoron, glaze.FluxAlkaline, glaze.FluxAlkalineEarth, glaze.FluxLead,
}

var allAtmospheres = []glaze.Atmosphere{
	glaze.AtmosphereOxidation, glaze.AtmosphereReduction, glaze.AtmosphereNeutral,
}

func TestCompose_ReductionCobaltBoronHighFire(t *testing.T) {
	got, err := glaze.Compose(glaze.Formulation{
		Colorant:   glaze.ColorantCobalt,
		Percentage: 2.0,
		Flux:       glaze.FluxBoron,
		Atmosphere: glaze.AtmosphereReduction,
		Cone:       10,
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	want := glaze.VisualParameters{
		OpticalIntensity: 8.5,
		Reflectivity:     9.5,
		HueTemperature:   1.5,
		MaturationLevel:  9.5,
	}
	approx := cmpopts.EquateApprox(0, 0.5)
	fields := cmpopts.IgnoreFields(glaze.VisualParameters{}, "Saturation", "CrystallineDefinition", "SurfaceFlow")
	if diff := cmp.Diff(want, got, approx, fields); diff != "" {
		t.Errorf("deep blue reduction glaze mismatch (-want +got):\n%s", diff)
	}
	if got.Saturation < 7.5 {
		t.Errorf("saturation = %v, want highly saturated (> 7.5)", got.Saturation)
	}
}

func TestCompose_OxidationIronAlkalineEarthMidFire(t *testing.T) {
	got, err := glaze.Compose(glaze.Formulation{
		Colorant:   glaze.ColorantIron,
		Percentage: 8.0,
		Flux:       glaze.FluxAlkalineEarth,
		Atmosphere: glaze.AtmosphereOxidation,
		Cone:       6,
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	want := glaze.VisualParameters{
		OpticalIntensity: 4.0,
		Reflectivity:     2.5,
		HueTemperature:   8.0,
	}
	approx := cmpopts.EquateApprox(0, 0.5)
	fields := cmpopts.IgnoreFields(glaze.VisualParameters{},
		"Saturation", "MaturationLevel", "CrystallineDefinition", "SurfaceFlow")
	if diff := cmp.Diff(want, got, approx, fields); diff != "" {
		t.Errorf("earthy matte iron glaze mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_RunningCopperAlkalineReduction(t *testing.T) {
	base := glaze.Formulation{
		Colorant:   glaze.ColorantCopper,
		Percentage: 8.0,
		Flux:       glaze.FluxAlkaline,
		Atmosphere: glaze.AtmosphereReduction,
		Cone:       10,
	}

	running := base
	running.Runs = true
	withRuns, err := glaze.Compose(running)
	if err != nil {
		t.Fatalf("Compose(runs=true): %v", err)
	}
	withoutRuns, err := glaze.Compose(base)
	if err != nil {
		t.Fatalf("Compose(runs=false): %v", err)
	}

	if diff := withRuns.SurfaceFlow - 4.8; diff < -0.5 || diff > 0.5 {
		t.Errorf("surface_flow = %v, want ~4.8", withRuns.SurfaceFlow)
	}
	if diff := withRuns.Reflectivity - 6.0; diff < -0.5 || diff > 0.5 {
		t.Errorf("reflectivity = %v, want ~6.0", withRuns.Reflectivity)
	}
	if withRuns.SurfaceFlow <= withoutRuns.SurfaceFlow {
		t.Errorf("runs=true flow %v not greater than runs=false flow %v",
			withRuns.SurfaceFlow, withoutRuns.SurfaceFlow)
	}
}

func TestCompose_AllOutputsBounded(t *testing.T) {
	cones := []int{glaze.ConeMin, -3, 0, 2, 4, 6, 8, 10, 12, glaze.ConeMax}
	percentages := []float64{0.5, 2, 8, 15, 50, 100}

	for _, c := range allColorants {
		for _, fx := range allFluxes {
			for _, atm := range allAtmospheres {
				for _, cone := range cones {
					for _, pct := range percentages {
						for _, runs := range []bool{false, true} {
							f := glaze.Formulation{
								Colorant: c, Percentage: pct, Flux: fx,
								Atmosphere: atm, Cone: cone, Runs: runs,
							}
							p, err := glaze.Compose(f)
							if err != nil {
								t.Fatalf("Compose(%+v): %v", f, err)
							}
							checkBounds(t, f, p)
						}
					}
				}
			}
		}
	}
}

func checkBounds(t *testing.T, f glaze.Formulation, p glaze.VisualParameters) {
	t.Helper()
	fields := map[string]float64{
		"optical_intensity":      p.OpticalIntensity,
		"saturation":             p.Saturation,
		"reflectivity":           p.Reflectivity,
		"hue_temperature":        p.HueTemperature,
		"maturation_level":       p.MaturationLevel,
		"crystalline_definition": p.CrystallineDefinition,
		"surface_flow":           p.SurfaceFlow,
	}
	for name, v := range fields {
		if v < 0 || v > 10 {
			t.Errorf("%+v: %s = %v outside [0,10]", f, name, v)
		}
	}
}

func TestCompose_SaturationClampedAtTen(t *testing.T) {
	p, err := glaze.Compose(glaze.Formulation{
		Colorant:   glaze.ColorantCobalt,
		Percentage: 15.0,
		Flux:       glaze.FluxBoron,
		Atmosphere: glaze.AtmosphereReduction,
		Cone:       13,
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if p.Saturation != 10.0 {
		t.Errorf("saturation = %v, want clamped to 10.0", p.Saturation)
	}
}

func TestCompose_MaturationMonotonicInCone(t *testing.T) {
	prev := -1.0
	for cone := glaze.ConeMin; cone <= glaze.ConeMax; cone++ {
		p, err := glaze.Compose(glaze.Formulation{
			Colorant:   glaze.ColorantChrome,
			Percentage: 5.0,
			Flux:       glaze.FluxAlkaline,
			Atmosphere: glaze.AtmosphereNeutral,
			Cone:       cone,
		})
		if err != nil {
			t.Fatalf("Compose(cone=%d): %v", cone, err)
		}
		if p.MaturationLevel < prev {
			t.Errorf("maturation dipped at cone %d: %v < %v", cone, p.MaturationLevel, prev)
		}
		prev = p.MaturationLevel
	}
}

func TestCompose_AtmosphereIntensityOrdering(t *testing.T) {
	intensity := func(atm glaze.Atmosphere) float64 {
		p, err := glaze.Compose(glaze.Formulation{
			Colorant:   glaze.ColorantManganese,
			Percentage: 4.0,
			Flux:       glaze.FluxLead,
			Atmosphere: atm,
			Cone:       6,
		})
		if err != nil {
			t.Fatalf("Compose(%s): %v", atm, err)
		}
		return p.OpticalIntensity
	}

	red, neu, oxi := intensity(glaze.AtmosphereReduction), intensity(glaze.AtmosphereNeutral), intensity(glaze.AtmosphereOxidation)
	if !(red >= neu && neu >= oxi) {
		t.Errorf("intensity ordering violated: reduction=%v neutral=%v oxidation=%v", red, neu, oxi)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	f := glaze.Formulation{
		Colorant:   glaze.ColorantCopper,
		Percentage: 8.0,
		Flux:       glaze.FluxAlkaline,
		Atmosphere: glaze.AtmosphereReduction,
		Cone:       10,
		Runs:       true,
	}
	first, err := glaze.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := glaze.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical input produced different output (-first +second):\n%s", diff)
	}
}

func TestAnalyze_ConcurrentCallersAgree(t *testing.T) {
	f := glaze.Formulation{
		Colorant:   glaze.ColorantCobalt,
		Percentage: 2.0,
		Flux:       glaze.FluxBoron,
		Atmosphere: glaze.AtmosphereReduction,
		Cone:       10,
	}
	baseline, err := glaze.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			got, err := glaze.Analyze(f)
			if err != nil {
				return err
			}
			if diff := cmp.Diff(baseline, got); diff != "" {
				return fmt.Errorf("concurrent result diverged:\n%s", diff)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestCompose_Errors(t *testing.T) {
	valid := glaze.Formulation{
		Colorant:   glaze.ColorantIron,
		Percentage: 8.0,
		Flux:       glaze.FluxBoron,
		Atmosphere: glaze.AtmosphereOxidation,
		Cone:       6,
	}

	tests := []struct {
		name   string
		mutate func(*glaze.Formulation)
		check  func(error) bool
		kind   string
	}{
		{"unknown colorant", func(f *glaze.Formulation) { f.Colorant = "rutile" }, glaze.IsUnknownIdentifier, "UnknownIdentifier"},
		{"unknown flux", func(f *glaze.Formulation) { f.Flux = "feldspar" }, glaze.IsUnknownIdentifier, "UnknownIdentifier"},
		{"cone below range", func(f *glaze.Formulation) { f.Cone = glaze.ConeMin - 1 }, glaze.IsOutOfRange, "OutOfRange"},
		{"cone above range", func(f *glaze.Formulation) { f.Cone = glaze.ConeMax + 1 }, glaze.IsOutOfRange, "OutOfRange"},
		{"zero percentage", func(f *glaze.Formulation) { f.Percentage = 0 }, glaze.IsInvalidFormulation, "InvalidFormulation"},
		{"negative percentage", func(f *glaze.Formulation) { f.Percentage = -1 }, glaze.IsInvalidFormulation, "InvalidFormulation"},
		{"excessive percentage", func(f *glaze.Formulation) { f.Percentage = 101 }, glaze.IsInvalidFormulation, "InvalidFormulation"},
		{"unknown atmosphere", func(f *glaze.Formulation) { f.Atmosphere = "vacuum" }, glaze.IsInvalidFormulation, "InvalidFormulation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)

			p, err := glaze.Compose(f)
			if err == nil {
				t.Fatalf("expected error, got %+v", p)
			}
			if !tc.check(err) {
				t.Errorf("expected %s, got %v", tc.kind, err)
			}
			if p != (glaze.VisualParameters{}) {
				t.Errorf("failed Compose returned partial result: %+v", p)
			}

			a, err := glaze.Analyze(f)
			if err == nil || a != nil {
				t.Errorf("Analyze should fail with no output, got %+v, err=%v", a, err)
			}
		})
	}
}
