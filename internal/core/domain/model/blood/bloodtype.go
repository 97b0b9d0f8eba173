package blood

import (
	"fmt"

	"bloodlink/internal/pkg/errs"
)

// Type is a value object representing one of the eight ABO/Rh blood
// categories. The zero value is invalid; construct via NewType or use one of
// the predefined constants.
type Type string

// The eight recognized ABO/Rh categories.
const (
	ONegative  Type = "O-"
	OPositive  Type = "O+"
	ANegative  Type = "A-"
	APositive  Type = "A+"
	BNegative  Type = "B-"
	BPositive  Type = "B+"
	ABNegative Type = "AB-"
	ABPositive Type = "AB+"
)

// AllTypes returns every recognized blood type. The slice is a fresh copy on
// each call, so callers may reorder it freely.
func AllTypes() []Type {
	return []Type{
		ONegative, OPositive,
		ANegative, APositive,
		BNegative, BPositive,
		ABNegative, ABPositive,
	}
}

// NewType parses a blood type from its string representation.
// Returns a validation error when the string is not one of the eight
// recognized ABO/Rh categories.
func NewType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the type is one of the eight recognized categories.
func (t Type) Validate() error {
	switch t {
	case ONegative, OPositive, ANegative, APositive, BNegative, BPositive, ABNegative, ABPositive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"bloodType",
			fmt.Errorf("%q is not a recognized ABO/Rh category", string(t)),
		)
	}
}

// String returns the canonical representation, e.g. "AB-".
func (t Type) String() string {
	return string(t)
}
