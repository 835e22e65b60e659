// flight/errors.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import "errors"

var (
	ErrElapsedExceedsFlight  = errors.New("Elapsed time exceeds the flight time")
	ErrNegativeElapsed       = errors.New("Elapsed time is negative")
	ErrNonPositiveCoordinate = errors.New("Some coordinates are not positive numbers")
	ErrOutOfRange            = errors.New("Destination is out of range")
	ErrSpeedClamped          = errors.New("Speed is outside the allowed range")
)

// Reason returns a short, stable label for an advisory error, suitable
// for metric labels and reports. It returns "" for a nil error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrElapsedExceedsFlight):
		return "elapsed_exceeds_flight"
	case errors.Is(err, ErrNegativeElapsed):
		return "negative_elapsed"
	case errors.Is(err, ErrNonPositiveCoordinate):
		return "non_positive_coordinate"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrSpeedClamped):
		return "speed_clamped"
	default:
		return "other"
	}
}
