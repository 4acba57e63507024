package model

import "github.com/samber/lo"

// Dimensions holds the three edge lengths of a package.
type Dimensions struct {
	Width  float64
	Height float64
	Length float64
}

// Sum returns width + height + length, the combined size checked against the size limit.
func (d Dimensions) Sum() float64 {
	return lo.Sum([]float64{d.Width, d.Height, d.Length})
}

// Volume returns width × height × length.
func (d Dimensions) Volume() float64 {
	return lo.Product([]float64{d.Width, d.Height, d.Length})
}

// Package is a parcel as entered by the user.
type Package struct {
	Weight float64
	Dimensions
}
