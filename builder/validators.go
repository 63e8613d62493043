package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: builder: parameter too small" otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. methodCycle.
//   - got:    actual value supplied by the caller.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateMax ensures that 'got' is ≤ 'max'.
// Returns "<Method>: parameter must be ≤ <max>, got <got>: builder: too many vertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMax(method string, got, max int) error {
	if got > max {
		return builderErrorf(method, ErrTooManyVertices, "parameter must be ≤ %d, got %d", max, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Used by RandomEdges and NewRandom.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
