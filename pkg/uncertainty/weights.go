package uncertainty

import "fmt"

// resolveWeights produces the effective feature weights for a computation.
//
// Precedence: a fitted model supplied via WithModel is authoritative; an
// explicit weight map is used otherwise; with neither, weighting is uniform.
// Every failure mode of a supplied source (nil report, extraction error,
// malformed score rows) degrades to uniform mode with a notice: weight
// unavailability is an expected outcome, not an error.
func resolveWeights(selection []string, cfg *computeConfig) WeightResolution {
	if cfg.source != nil {
		return resolveFromModel(selection, cfg.source)
	}
	if cfg.weights != nil {
		return resolveExplicit(selection, cfg.weights)
	}
	return WeightResolution{Mode: WeightUniform, Features: selection}
}

// resolveFromModel derives weights from a fitted model's importance report.
// Multi-class reports are aggregated by averaging per-feature importance
// across classes; regression and binary models report a single score row
// that is used directly.
func resolveFromModel(selection []string, src ImportanceSource) WeightResolution {
	degraded := func(reason string) WeightResolution {
		return WeightResolution{
			Mode:     WeightUniform,
			Features: selection,
			Reason:   reason,
			Notices: []Notice{{
				Code:    NoticeWeightsUnavailable,
				Message: "variable weighting disabled, performing unweighted computation: " + reason,
			}},
		}
	}

	imp, err := src.FeatureImportance()
	if err != nil {
		return degraded("importance extraction failed: " + err.Error())
	}
	if imp == nil || len(imp.Features) == 0 || len(imp.Scores) == 0 {
		return degraded("model reported no importance scores")
	}
	for i, row := range imp.Scores {
		if len(row) != len(imp.Features) {
			return degraded(fmt.Sprintf("importance row %d has %d scores for %d features", i, len(row), len(imp.Features)))
		}
	}

	// Average across classes; a single row averages to itself.
	byName := make(map[string]float64, len(imp.Features))
	for j, name := range imp.Features {
		var sum float64
		for _, row := range imp.Scores {
			sum += row[j]
		}
		byName[name] = sum / float64(len(imp.Scores))
	}

	res := alignWeights(selection, byName)
	res.Mode = WeightModel
	return res
}

// resolveExplicit aligns a caller-supplied weight map to the selection.
func resolveExplicit(selection []string, weights map[string]float64) WeightResolution {
	res := alignWeights(selection, weights)
	res.Mode = WeightExplicit
	return res
}

// alignWeights narrows the selection to the features the weight source covers
// and emits the aligned weight vector.  Negative weights never propagate:
// they are clamped to zero, each with a notice.
func alignWeights(selection []string, byName map[string]float64) WeightResolution {
	available := make(map[string]bool, len(byName))
	for n := range byName {
		available[n] = true
	}
	kept := narrowTo(selection, available)

	var notices []Notice
	aligned := make([]float64, len(kept))
	for i, n := range kept {
		w := byName[n]
		if w < 0 {
			notices = append(notices, Notice{
				Code:    NoticeNegativeWeightClamped,
				Message: fmt.Sprintf("negative weight %g for feature %q clamped to 0", w, n),
			})
			w = 0
		}
		aligned[i] = w
	}
	return WeightResolution{Features: kept, Weights: aligned, Notices: notices}
}
