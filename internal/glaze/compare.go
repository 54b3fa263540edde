package glaze

import "math"

// Difference verdicts, from fixed thresholds on the absolute delta.
const (
	VerdictSimilar  = "similar"
	VerdictModerate = "moderately different"
	VerdictStrong   = "strongly different"
)

const (
	similarThreshold  = 1.5
	moderateThreshold = 4.0
)

// ParameterDelta is one per-parameter comparison row: both values, the
// signed difference (B minus A), and a qualitative verdict.
type ParameterDelta struct {
	Parameter string  `json:"parameter"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Delta     float64 `json:"delta"`
	Verdict   string  `json:"verdict"`
}

// Comparison is the full diff between two formulations' analyses.
type Comparison struct {
	A      *Analysis        `json:"glaze_a"`
	B      *Analysis        `json:"glaze_b"`
	Deltas []ParameterDelta `json:"deltas"`
}

// Compare analyzes both formulations and reports the signed per-parameter
// differences with qualitative verdicts. Fails if either formulation fails
// analysis.
func Compare(a, b Formulation) (*Comparison, error) {
	analysisA, err := Analyze(a)
	if err != nil {
		return nil, err
	}
	analysisB, err := Analyze(b)
	if err != nil {
		return nil, err
	}

	pa, pb := analysisA.Parameters, analysisB.Parameters
	rows := []struct {
		name string
		a, b float64
	}{
		{"optical_intensity", pa.OpticalIntensity, pb.OpticalIntensity},
		{"saturation", pa.Saturation, pb.Saturation},
		{"reflectivity", pa.Reflectivity, pb.Reflectivity},
		{"hue_temperature", pa.HueTemperature, pb.HueTemperature},
		{"maturation_level", pa.MaturationLevel, pb.MaturationLevel},
		{"crystalline_definition", pa.CrystallineDefinition, pb.CrystallineDefinition},
		{"surface_flow", pa.SurfaceFlow, pb.SurfaceFlow},
	}

	deltas := make([]ParameterDelta, 0, len(rows))
	for _, r := range rows {
		delta := math.Round((r.b-r.a)*10) / 10
		deltas = append(deltas, ParameterDelta{
			Parameter: r.name,
			A:         r.a,
			B:         r.b,
			Delta:     delta,
			Verdict:   verdict(math.Abs(delta)),
		})
	}

	return &Comparison{A: analysisA, B: analysisB, Deltas: deltas}, nil
}

func verdict(absDelta float64) string {
	switch {
	case absDelta < similarThreshold:
		return VerdictSimilar
	case absDelta < moderateThreshold:
		return VerdictModerate
	default:
		return VerdictStrong
	}
}
