// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
)

// Polar is a polar coordinate (r, θ) with its translated Cartesian position.
type Polar struct {
	R     float64 // magnitude
	Theta float64 // angle in radians
	X     float64 // R·cos(Theta)
	Y     float64 // R·sin(Theta)
}

// NewPolar builds a Polar from a magnitude and an angle.
func NewPolar(r, theta float64) Polar {
	return Polar{R: r, Theta: theta, X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Number returns the complex value X + Yi.
func (p Polar) Number() Number { return FromPolar(p) }

// String returns "(r,theta)" with six decimals.
func (p Polar) String() string { return fmt.Sprintf("(%f,%f)", p.R, p.Theta) }
