package dish

import "errors"

// Domain errors for catalog records

var (
	ErrMissingName      = errors.New("dish name is required")
	ErrInvalidMealType  = errors.New("dish meal type must be breakfast, lunch, dinner or snack")
	ErrNegativeCalories = errors.New("dish calories cannot be negative")
	ErrNegativeProtein  = errors.New("dish protein cannot be negative")
)
