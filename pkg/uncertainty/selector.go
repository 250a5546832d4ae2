package uncertainty

// selectFeatures resolves which named features participate in a computation.
// requested is the caller's feature list, or nil for "all training features".
// The result preserves the training set's column order, because scale and
// weight vectors are later aligned positionally to it, and silently drops
// names absent from either the training or the query table.  Silent dropping
// is deliberate: a fitted model commonly encodes more named predictors than a
// particular query grid physically carries.
func selectFeatures(trainNames, queryNames, requested []string) []string {
	inQuery := make(map[string]bool, len(queryNames))
	for _, n := range queryNames {
		inQuery[n] = true
	}

	var wanted map[string]bool
	if requested != nil {
		wanted = make(map[string]bool, len(requested))
		for _, n := range requested {
			wanted[n] = true
		}
	}

	selected := make([]string, 0, len(trainNames))
	for _, n := range trainNames {
		if !inQuery[n] {
			continue
		}
		if wanted != nil && !wanted[n] {
			continue
		}
		selected = append(selected, n)
	}
	return selected
}

// narrowTo keeps only the names of selection present in available, preserving
// selection order.  Shared by weight resolution, which drops features the
// weight source does not cover.
func narrowTo(selection []string, available map[string]bool) []string {
	kept := make([]string, 0, len(selection))
	for _, n := range selection {
		if available[n] {
			kept = append(kept, n)
		}
	}
	return kept
}
