package glaze

// crystallinityAnchors define the raw temperature contribution to crystal
// growth before flux suppression: minimal below cone 2, developed at high
// fire.
var crystallinityAnchors = []coneAnchor{
	{ConeMin, 1.0},
	{2, 2.0},
	{6, 4.0},
	{10, 8.0},
	{ConeMax, 9.0},
}

// Surface flow weighting. The runs flag switches the running-tendency
// multiplier, producing a 2-3 point category shift on fluid fluxes.
const (
	flowBase        = 0.8
	flowRunningGain = 0.45
	flowSettledGain = 0.15
)

// crystallineDefinition combines the temperature-scaled crystallinity term
// with the flux's suppression: glossy melts (high reflectivity, high
// suppression factor) smother crystal growth, matte melts let it develop.
func crystallineDefinition(flux FluxProfile, cone int) (float64, error) {
	temp, err := interpolateCone(crystallinityAnchors, cone)
	if err != nil {
		return 0, err
	}
	damping := 1.0 - flux.CrystalSuppression*(flux.Reflectivity/10.0)
	return temp * damping, nil
}

// surfaceFlow derives gravity-driven movement from the flux's running
// tendency; the runs flag boosts it visibly and reproducibly.
func surfaceFlow(flux FluxProfile, runs bool) float64 {
	gain := flowSettledGain
	if runs {
		gain = flowRunningGain
	}
	return flowBase + flux.RunningTendency*gain
}
