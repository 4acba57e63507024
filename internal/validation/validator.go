package validation

import "PackageExpress/internal/model"

const (
	// DefaultMaxWeight is the heaviest package accepted, inclusive.
	DefaultMaxWeight = 50.0
	// DefaultMaxDimensions is the largest accepted width + height + length, inclusive.
	DefaultMaxDimensions = 50.0

	TooHeavyMessage = "Package too heavy to be shipped via Package Express. Have a good day."
	TooBigMessage   = "Package too big to be shipped via Package Express."
)

// Validator decides whether a package can be shipped.
type Validator interface {
	ValidateWeight(weight float64) model.ValidationResult
	ValidateDimensions(d model.Dimensions) model.ValidationResult
}

// Standard enforces upper limits on weight and combined dimensions.
// Zero and negative values are accepted.
type Standard struct {
	MaxWeight     float64
	MaxDimensions float64
}

// NewStandard creates a Standard validator with the given limits.
func NewStandard(maxWeight, maxDimensions float64) *Standard {
	return &Standard{MaxWeight: maxWeight, MaxDimensions: maxDimensions}
}

// Default returns a Standard validator with the built-in limits.
func Default() *Standard {
	return NewStandard(DefaultMaxWeight, DefaultMaxDimensions)
}

// ValidateWeight fails when weight exceeds MaxWeight.
func (s *Standard) ValidateWeight(weight float64) model.ValidationResult {
	if weight > s.MaxWeight {
		return model.Fail(TooHeavyMessage)
	}
	return model.Pass()
}

// ValidateDimensions fails when width + height + length exceeds MaxDimensions.
func (s *Standard) ValidateDimensions(d model.Dimensions) model.ValidationResult {
	if d.Sum() > s.MaxDimensions {
		return model.Fail(TooBigMessage)
	}
	return model.Pass()
}
