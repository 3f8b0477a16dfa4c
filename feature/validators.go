// SPDX-License-Identifier: MIT
// Package: feature
//
// Purpose:
//  - Single source of truth for the scale sign checks shared by the shape
//    constructors and rescale.
//  - Every failure wraps ErrInvalidArgument and names the offending parameter.
//
// Note:
//  - Comparisons are written as !(v >= 0) / !(v > 0) so that NaN is rejected.

package feature

import "fmt"

// validatorErrorf wraps ErrInvalidArgument with the caller tag and the
// violated precondition.
func validatorErrorf(tag, name, cond string, v float64) error {
	return fmt.Errorf("%s: %s must be %s, got %g: %w", tag, name, cond, v, ErrInvalidArgument)
}

// validateNonNegative ensures a construction scale is >= 0.
// Complexity: O(1).
func validateNonNegative(tag, name string, v float64) error {
	if !(v >= 0) {
		return validatorErrorf(tag, name, ">= 0", v)
	}

	return nil
}

// validatePositive ensures a rescale factor is > 0.
// Complexity: O(1).
func validatePositive(tag, name string, v float64) error {
	if !(v > 0) {
		return validatorErrorf(tag, name, "> 0", v)
	}

	return nil
}
