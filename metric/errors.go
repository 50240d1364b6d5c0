// SPDX-License-Identifier: MIT
// Package metric: sentinel error set. Messages are prefixed "metric: ...".

package metric

import "errors"

var (
	// ErrUnknownAlgorithm indicates a name that is not registered.
	ErrUnknownAlgorithm = errors.New("metric: unknown algorithm")

	// ErrWrongFamily indicates an oracle of one family was requested for an
	// algorithm of the other (e.g. IntOracle("jaro")).
	ErrWrongFamily = errors.New("metric: algorithm belongs to another family")

	// ErrParseBound indicates a bound that is not a number of the family's kind.
	ErrParseBound = errors.New("metric: cannot parse distance bound")

	// ErrOutOfUnitRange indicates a unit-family bound outside [0, 1].
	ErrOutOfUnitRange = errors.New("metric: bound must lie in [0, 1]")

	// ErrNegativeBound indicates a negative integer bound.
	ErrNegativeBound = errors.New("metric: bound must be non-negative")

	// ErrInvalidBounds indicates min > max.
	ErrInvalidBounds = errors.New("metric: min bound greater than max bound")
)
