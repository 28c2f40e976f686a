// Package model derives training data from the task log and fits the
// productivity classifier.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProductiveMinutes is the inclusive lower bound for a productive task.
const ProductiveMinutes = 60

// ErrUnparseableDuration marks a duration that fell back to zero minutes.
var ErrUnparseableDuration = errors.New("unparseable duration")

// ParseDuration converts free text such as "30 minutes" or "2 hours" into minutes.
// The leading token is the magnitude; the unit is detected anywhere in the text,
// with "hour" taking precedence over "minute". Every failure, including a
// missing unit, returns 0 and an error wrapping ErrUnparseableDuration.
func ParseDuration(s string) (float64, error) {
	text := strings.ToLower(s)

	var multiplier float64
	switch {
	case strings.Contains(text, "hour"):
		multiplier = 60
	case strings.Contains(text, "minute"):
		multiplier = 1
	default:
		return 0, fmt.Errorf("%w: %q has no hour or minute unit", ErrUnparseableDuration, s)
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q is empty", ErrUnparseableDuration, s)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnparseableDuration, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative magnitude", ErrUnparseableDuration, fields[0])
	}

	return value * multiplier, nil
}

// DurationMinutes is ParseDuration with the error discarded.
func DurationMinutes(s string) float64 {
	minutes, err := ParseDuration(s)
	if err != nil {
		return 0
	}
	return minutes
}

// IsProductive applies the productivity threshold to a minute count.
func IsProductive(minutes float64) bool {
	return minutes >= ProductiveMinutes
}
