// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error with the method context
// when its precondition is violated.
package builder

import (
	"fmt"
)

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected explicitly.
//
// Complexity: O(1) time and space.
func validateProbability(method, name string, p float64) error {
	if p != p || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: %s=%.6f not in [%.1f,%.1f]: %w",
			method, name, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateLabels checks every label is LabelNegative or LabelPositive.
//
// Complexity: O(n) time, O(1) space.
func validateLabels(method string, labels []int8) error {
	for i, l := range labels {
		if l != LabelNegative && l != LabelPositive {
			return fmt.Errorf("%s: labels[%d]=%d: %w", method, i, l, ErrInvalidLabel)
		}
	}

	return nil
}
