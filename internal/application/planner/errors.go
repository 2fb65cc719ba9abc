package planner

import "errors"

// Engine input errors. These fail the whole request and are detected
// before any allocation or filtering happens.

var (
	ErrNonPositiveCalories = errors.New("total calories must be a positive number")
	ErrUnknownCadence      = errors.New("meal cadence must be either '3 meals' or '3 meals + 2 snacks'")
)
