// SPDX-License-Identifier: MIT
// Package feature: sentinel error set.
// Callers MUST match these with errors.Is; every returned error wraps exactly
// one sentinel together with the violated precondition.

package feature

import "errors"

var (
	// ErrInvalidArgument is returned when a scale or rescale factor violates
	// its sign precondition (scale >= 0 at construction, factor > 0 on rescale).
	// NaN never satisfies a precondition and is rejected the same way.
	ErrInvalidArgument = errors.New("feature: invalid argument")
)
