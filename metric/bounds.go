// SPDX-License-Identifier: MIT
package metric

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntBounds parses a [min, max] window for the integer family.
//
// Errors: ErrParseBound, ErrNegativeBound, ErrInvalidBounds.
func ParseIntBounds(minStr, maxStr string) (int, int, error) {
	lo, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return 0, 0, fmt.Errorf("min %q: %w: %w", minStr, ErrParseBound, err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(maxStr))
	if err != nil {
		return 0, 0, fmt.Errorf("max %q: %w: %w", maxStr, ErrParseBound, err)
	}
	if lo < 0 || hi < 0 {
		return 0, 0, fmt.Errorf("[%d, %d]: %w", lo, hi, ErrNegativeBound)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("[%d, %d]: %w", lo, hi, ErrInvalidBounds)
	}

	return lo, hi, nil
}

// ParseUnitBounds parses a [min, max] window for the unit-interval family.
// NaN never satisfies the range check and is rejected as out of range.
//
// Errors: ErrParseBound, ErrOutOfUnitRange, ErrInvalidBounds.
func ParseUnitBounds(minStr, maxStr string) (float64, float64, error) {
	lo, err := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("min %q: %w: %w", minStr, ErrParseBound, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("max %q: %w: %w", maxStr, ErrParseBound, err)
	}
	if !(lo >= 0 && lo <= 1) {
		return 0, 0, fmt.Errorf("min %v: %w", lo, ErrOutOfUnitRange)
	}
	if !(hi >= 0 && hi <= 1) {
		return 0, 0, fmt.Errorf("max %v: %w", hi, ErrOutOfUnitRange)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("[%v, %v]: %w", lo, hi, ErrInvalidBounds)
	}

	return lo, hi, nil
}
