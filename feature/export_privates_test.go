// SPDX-License-Identifier: MIT

package feature

// Test bridge: exposes the unexported validators to feature_test only.
var (
	ExportedValidateNonNegative = validateNonNegative
	ExportedValidatePositive    = validatePositive
)
