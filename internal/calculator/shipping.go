package calculator

import "PackageExpress/internal/model"

// DefaultDivisor scales the volume-weight product down to a currency amount.
const DefaultDivisor = 100.0

// CostCalculator prices a validated package.
type CostCalculator interface {
	CalculateShippingCost(p model.Package) float64
}

// Standard prices a package as width × height × length × weight / Divisor.
type Standard struct {
	Divisor float64
}

// NewStandard creates a Standard calculator. A non-positive divisor falls back to DefaultDivisor.
func NewStandard(divisor float64) *Standard {
	if divisor <= 0 {
		divisor = DefaultDivisor
	}
	return &Standard{Divisor: divisor}
}

// CalculateShippingCost returns the unrounded cost of shipping p.
func (s *Standard) CalculateShippingCost(p model.Package) float64 {
	return p.Volume() * p.Weight / s.Divisor
}

// CalculateShippingCost computes the cost with the default divisor.
func CalculateShippingCost(weight, width, height, length float64) float64 {
	return (width * height * length * weight) / DefaultDivisor
}
