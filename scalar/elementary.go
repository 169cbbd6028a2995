// SPDX-License-Identifier: MIT

// Package scalar - elementary-function dispatcher.
//
// Every function takes a dual-mode Number and decides per call:
//   - real input inside the principal domain of the math package function
//     → delegate to package math and return a real Number;
//   - otherwise → evaluate the closed-form analytic continuation on Number
//     arithmetic and return a complex Number.
//
// Division inside the closed forms follows IEEE semantics (±Inf, never an
// error), mirroring package math; only Invert reports ErrDivideByZero.
package scalar

import "math"

// Logarithm constants used by the base conversions.
const (
	ln2  = math.Ln2
	ln10 = math.Ln10
)

var (
	one    = Real(1)
	half   = Complex(0, 0.5)
	negI   = Complex(0, -1)
	halfPi = Real(math.Pi / 2)
)

// quo divides with IEEE semantics; a zero divisor yields Inf components.
func quo(x, y Number) Number {
	if both(x, y) {
		return Real(x.re / y.re)
	}
	den := y.re*y.re + y.im*y.im

	return Complex((x.re*y.re+x.im*y.im)/den, (x.im*y.re-x.re*y.im)/den)
}

// sq returns x·x.
func sq(x Number) Number { return x.Mul(x) }

// Acos returns the inverse cosine: acos(x) = π/2 + i·ln(ix + sqrt(1 − x²)).
// Real for real |x| ≤ 1.
func Acos(x Number) Number {
	if x.IsReal() && math.Abs(x.re) <= 1 {
		return Real(math.Acos(x.re))
	}
	c := Log(I.Mul(x).Add(Sqrt(one.Sub(sq(x)))))

	return halfPi.Add(I.Mul(c))
}

// Asin returns the inverse sine: asin(x) = −i·ln(ix + sqrt(1 − x²)).
// Real for real |x| ≤ 1.
func Asin(x Number) Number {
	if x.IsReal() && math.Abs(x.re) <= 1 {
		return Real(math.Asin(x.re))
	}
	c := Log(I.Mul(x).Add(Sqrt(one.Sub(sq(x)))))

	return negI.Mul(c)
}

// Atan returns the inverse tangent: atan(x) = i/2·ln((1 − ix)/(1 + ix)).
// Real for every real x.
func Atan(x Number) Number {
	if x.IsReal() {
		return Real(math.Atan(x.re))
	}
	ix := I.Mul(x)

	return half.Mul(Log(quo(one.Sub(ix), one.Add(ix))))
}

// Atan2 returns the angle of the vector (x, y). Real operands use math.Atan2;
// otherwise atan(y/x).
func Atan2(y, x Number) Number {
	if both(x, y) {
		return Real(math.Atan2(y.re, x.re))
	}

	return Atan(quo(y, x))
}

// Acosh returns the inverse hyperbolic cosine: ln(sqrt(x−1)·sqrt(x+1) + x).
// Real for real x ≥ 1.
func Acosh(x Number) Number {
	if x.IsReal() && x.re >= 1 {
		return Real(math.Acosh(x.re))
	}

	return Log(Sqrt(x.Sub(one)).Mul(Sqrt(x.Add(one))).Add(x))
}

// Asinh returns the inverse hyperbolic sine: ln(x + sqrt(x² + 1)).
// Real for every real x.
func Asinh(x Number) Number {
	if x.IsReal() {
		return Real(math.Asinh(x.re))
	}

	return Log(x.Add(Sqrt(sq(x).Add(one))))
}

// Atanh returns the inverse hyperbolic tangent: ½·ln((1+x)/(1−x)).
// Real for real |x| ≤ 1 (±Inf at the endpoints).
func Atanh(x Number) Number {
	if x.IsReal() && math.Abs(x.re) <= 1 {
		return Real(math.Atanh(x.re))
	}
	l := Log(quo(one.Add(x), one.Sub(x)))

	return Complex(l.re/2, l.im/2)
}

// Log returns the natural logarithm: ln|x| + i·arg(x).
// Real for real x > 0.
func Log(x Number) Number {
	if x.IsReal() && x.re > 0 {
		return Real(math.Log(x.re))
	}

	return Complex(math.Log(x.R()), x.Theta())
}

// Log1p returns ln(1 + x). Real for real x > −1.
func Log1p(x Number) Number {
	if x.IsReal() && x.re > -1 {
		return Real(math.Log1p(x.re))
	}

	return Log(x.Add(one))
}

// Log2 returns the base-2 logarithm. Real for real x > 0.
func Log2(x Number) Number {
	if x.IsReal() && x.re > 0 {
		return Real(math.Log2(x.re))
	}

	return quo(Log(x), Real(ln2))
}

// Log10 returns the base-10 logarithm. Real for real x > 0.
func Log10(x Number) Number {
	if x.IsReal() && x.re > 0 {
		return Real(math.Log10(x.re))
	}

	return quo(Log(x), Real(ln10))
}

// Sqrt returns the principal square root. Real for real x ≥ 0;
// Sqrt(Real(-4)) is 2i up to rounding of the real part.
func Sqrt(x Number) Number {
	if x.IsReal() && x.re >= 0 {
		return Real(math.Sqrt(x.re))
	}

	return x.AsComplex().Pow(0.5)
}

// Cbrt returns the cube root. Real inputs use the real cube root (defined for
// negatives); complex inputs take the principal root.
func Cbrt(x Number) Number {
	if x.IsReal() {
		return Real(math.Cbrt(x.re))
	}

	return x.Pow(1.0 / 3)
}

// Exp returns e^x: e^a·(cos b + i·sin b).
func Exp(x Number) Number {
	if x.IsReal() {
		return Real(math.Exp(x.re))
	}
	ea := math.Exp(x.re)

	return Complex(ea*math.Cos(x.im), ea*math.Sin(x.im))
}

// Expm1 returns e^x − 1.
func Expm1(x Number) Number {
	if x.IsReal() {
		return Real(math.Expm1(x.re))
	}

	return Exp(x).Sub(one)
}

// Sin returns sin(a+bi) = sin a·cosh b + i·cos a·sinh b.
func Sin(x Number) Number {
	if x.IsReal() {
		return Real(math.Sin(x.re))
	}

	return Complex(math.Sin(x.re)*math.Cosh(x.im), math.Cos(x.re)*math.Sinh(x.im))
}

// Cos returns cos(a+bi) = cos a·cosh b − i·sin a·sinh b.
func Cos(x Number) Number {
	if x.IsReal() {
		return Real(math.Cos(x.re))
	}

	return Complex(math.Cos(x.re)*math.Cosh(x.im), -math.Sin(x.re)*math.Sinh(x.im))
}

// Tan returns sin(x)/cos(x).
func Tan(x Number) Number {
	if x.IsReal() {
		return Real(math.Tan(x.re))
	}

	return quo(Sin(x), Cos(x))
}

// Sinh returns (e^x − e^−x)/2.
func Sinh(x Number) Number {
	if x.IsReal() {
		return Real(math.Sinh(x.re))
	}
	d := Exp(x).Sub(Exp(x.Neg()))

	return Complex(d.re/2, d.im/2)
}

// Cosh returns (e^x + e^−x)/2.
func Cosh(x Number) Number {
	if x.IsReal() {
		return Real(math.Cosh(x.re))
	}
	s := Exp(x).Add(Exp(x.Neg()))

	return Complex(s.re/2, s.im/2)
}

// Tanh returns sinh(x)/cosh(x).
func Tanh(x Number) Number {
	if x.IsReal() {
		return Real(math.Tanh(x.re))
	}

	return quo(Sinh(x), Cosh(x))
}

// Pow returns base^exp for dual-mode operands (see Number.PowN).
func Pow(base, exp Number) Number { return base.PowN(exp) }

// Hypot returns sqrt(a² + b²).
func Hypot(a, b Number) Number {
	if both(a, b) {
		return Real(math.Hypot(a.re, b.re))
	}

	return Sqrt(sq(a).Add(sq(b)))
}

// Invert returns 1/x.
// Errors: ErrDivideByZero when x is zero.
func Invert(x Number) (Number, error) { return x.Inverse() }

// Abs returns |x| for real input; for complex input the absolute value is taken
// per component (|a| + |b|i). Use Number.Abs for the modulus.
func Abs(x Number) Number {
	if x.IsReal() {
		return Real(math.Abs(x.re))
	}

	return Complex(math.Abs(x.re), math.Abs(x.im))
}

// Ceil applies math.Ceil to each component.
func Ceil(x Number) Number { return componentwise(x, math.Ceil) }

// Floor applies math.Floor to each component.
func Floor(x Number) Number { return componentwise(x, math.Floor) }

// Round applies math.Round to each component.
func Round(x Number) Number { return componentwise(x, math.Round) }

func componentwise(x Number, f func(float64) float64) Number {
	if x.IsReal() {
		return Real(f(x.re))
	}

	return Complex(f(x.re), f(x.im))
}
