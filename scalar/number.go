// SPDX-License-Identifier: MIT

// Package scalar - dual-mode Number (real or complex) and its arithmetic.
//
// Purpose:
//   - Provide one immutable value type that is either a real float64 or a complex
//     pair, with operations that close over the type: real ∘ real stays real when
//     the true result is real, anything touching a complex operand is complex.
//   - Replace runtime class inspection with a closed Kind tag checked by switch.
//
// Determinism:
//   - Every operation is a pure function of its operands; no hidden state.
//
// AI-Hints:
//   - Use Real(x) for plain doubles and Complex(a,b) when the value is complex by
//     construction (even if b == 0); kind matters for real-closure of results.
//   - Equal/Compare ignore kind: Real(2) equals Complex(2,0).
package scalar

import (
	"math"
	"strconv"
)

// Kind tags the mode of a Number.
type Kind uint8

const (
	// KindReal marks a value on the real line (im is always 0).
	KindReal Kind = iota
	// KindComplex marks a value carrying an imaginary component (possibly 0).
	KindComplex
)

// String returns "real" or "complex".
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is an immutable dual-mode scalar a+bi.
// NaN components are normalized to 0 at construction.
type Number struct {
	re, im float64 // rectangular form
	kind   Kind    // closed sum tag
}

// Well-known values.
var (
	Zero = Real(0)
	One  = Real(1)
	I    = Complex(0, 1)
)

// Real returns a real-kind Number holding x.
func Real(x float64) Number {
	if math.IsNaN(x) {
		x = 0
	}

	return Number{re: x, kind: KindReal}
}

// Complex returns a complex-kind Number a+bi.
func Complex(a, b float64) Number {
	if math.IsNaN(a) {
		a = 0
	}
	if math.IsNaN(b) {
		b = 0
	}

	return Number{re: a, im: b, kind: KindComplex}
}

// FromPolar converts a polar coordinate to a complex-kind Number.
func FromPolar(p Polar) Number {
	return Complex(p.R*math.Cos(p.Theta), p.R*math.Sin(p.Theta))
}

// Re returns the real component.
func (n Number) Re() float64 { return n.re }

// Im returns the imaginary component (0 for real kind).
func (n Number) Im() float64 { return n.im }

// Kind returns the mode tag.
func (n Number) Kind() Kind { return n.kind }

// IsReal reports whether n is of real kind.
func (n Number) IsReal() bool { return n.kind == KindReal }

// IsComplex reports whether n is of complex kind.
func (n Number) IsComplex() bool { return n.kind == KindComplex }

// IsZero reports a == 0 && b == 0, regardless of kind.
func (n Number) IsZero() bool { return n.re == 0 && n.im == 0 }

// R returns the polar magnitude sqrt(a²+b²).
func (n Number) R() float64 { return math.Hypot(n.re, n.im) }

// Theta returns the polar angle atan2(b, a) in radians.
func (n Number) Theta() float64 { return math.Atan2(n.im, n.re) }

// Abs returns the modulus |n| as a float64.
func (n Number) Abs() float64 { return n.R() }

// Polar returns the polar form of n.
func (n Number) Polar() Polar { return NewPolar(n.R(), n.Theta()) }

// AsComplex returns n re-tagged as complex kind.
func (n Number) AsComplex() Number { return Complex(n.re, n.im) }

// Complex128 returns n as a builtin complex128.
func (n Number) Complex128() complex128 { return complex(n.re, n.im) }

// both reports whether the two operands are real.
func both(x, y Number) bool { return x.kind == KindReal && y.kind == KindReal }

// Add returns n + m.
func (n Number) Add(m Number) Number {
	if both(n, m) {
		return Real(n.re + m.re)
	}

	return Complex(n.re+m.re, n.im+m.im)
}

// Sub returns n − m.
func (n Number) Sub(m Number) Number {
	if both(n, m) {
		return Real(n.re - m.re)
	}

	return Complex(n.re-m.re, n.im-m.im)
}

// Mul returns n · m.
func (n Number) Mul(m Number) Number {
	if both(n, m) {
		return Real(n.re * m.re)
	}

	return Complex(n.re*m.re-n.im*m.im, n.re*m.im+n.im*m.re)
}

// Neg returns −n, keeping the kind.
func (n Number) Neg() Number {
	if n.kind == KindReal {
		return Real(-n.re)
	}

	return Complex(-n.re, -n.im)
}

// Conj returns the complex conjugate; real values are returned unchanged.
func (n Number) Conj() Number {
	if n.kind == KindReal {
		return n
	}

	return Complex(n.re, -n.im)
}

// Div returns n / m.
// Errors: ErrDivideByZero when m == 0 (a=0, b=0), for either kind.
func (n Number) Div(m Number) (Number, error) {
	if m.IsZero() {
		return Number{}, ErrDivideByZero
	}
	if both(n, m) {
		return Real(n.re / m.re), nil
	}

	// (a+bi)/(c+di) = ((ac+bd) + (bc−ad)i) / (c²+d²)
	den := m.re*m.re + m.im*m.im

	return Complex((n.re*m.re+n.im*m.im)/den, (n.im*m.re-n.re*m.im)/den), nil
}

// Inverse returns 1/n.
// Errors: ErrDivideByZero when n == 0.
func (n Number) Inverse() (Number, error) {
	if n.kind == KindReal {
		return Real(1).Div(n)
	}

	return Complex(1, 0).Div(n)
}

// Pow raises n to a real exponent.
//
// A real base stays real when base ≥ 0 or the exponent is an integer; otherwise
// the result is promoted through the polar identity r^p · e^{i·p·θ}.
// Exponent 0 yields the multiplicative identity for every base, zero included.
func (n Number) Pow(p float64) Number {
	if p == 0 {
		return n.one()
	}
	if n.kind == KindReal && (n.re >= 0 || p == math.Trunc(p)) {
		return Real(math.Pow(n.re, p))
	}

	r := n.R()
	if r == 0 {
		return n.zeroLike(p)
	}
	rp := math.Pow(r, p)
	ang := n.Theta() * p

	return Complex(rp*math.Cos(ang), rp*math.Sin(ang))
}

// PowN raises n to a dual-mode exponent.
//
// For complex exponents it uses magnitude r^a·exp(−b·θ) and angle a·θ + b/2·ln(r²)
// before reconverting to rectangular form. Two real operands defer to Pow.
func (n Number) PowN(e Number) Number {
	if both(n, e) {
		return n.Pow(e.re)
	}
	if e.IsZero() {
		return Complex(1, 0)
	}

	r := n.R()
	if r == 0 {
		// 0^(a+bi) is 0 for a > 0 and undefined otherwise; report +Inf magnitude.
		if e.re > 0 {
			return Complex(0, 0)
		}
		return Complex(math.Inf(1), 0)
	}

	theta := n.Theta()
	r2 := r * r
	mag := math.Pow(r2, e.re/2) * math.Exp(-e.im*theta)
	ang := e.re * theta
	if e.im != 0 {
		ang += e.im / 2 * math.Log(r2)
	}

	return Complex(mag*math.Cos(ang), mag*math.Sin(ang))
}

// Compare orders by real part first, then imaginary part.
// Returns -1, 0 or +1.
func (n Number) Compare(m Number) int {
	switch {
	case n.re < m.re:
		return -1
	case n.re > m.re:
		return 1
	case n.im < m.im:
		return -1
	case n.im > m.im:
		return 1
	default:
		return 0
	}
}

// Equal reports Compare(m) == 0. No tolerance; kind is ignored.
func (n Number) Equal(m Number) bool { return n.Compare(m) == 0 }

// String renders integer-valued parts without a fraction: "0", "3", "2i", "-i", "1+i", "1-2.5i".
func (n Number) String() string {
	if n.kind == KindReal {
		return formatPart(n.re)
	}
	if n.re == 0 && n.im == 0 {
		return "0"
	}

	imag := formatImag(n.im)
	if n.re == 0 {
		return imag
	}
	if n.im == 0 {
		return formatPart(n.re)
	}
	if n.im > 0 {
		return formatPart(n.re) + "+" + imag
	}

	return formatPart(n.re) + imag
}

// one returns the multiplicative identity with n's kind.
func (n Number) one() Number {
	if n.kind == KindReal {
		return Real(1)
	}

	return Complex(1, 0)
}

// zeroLike returns 0 for positive exponents and +Inf for negative ones.
func (n Number) zeroLike(p float64) Number {
	if p > 0 {
		return Complex(0, 0)
	}

	return Complex(math.Inf(1), 0)
}

// formatPart renders a float, dropping ".0" for exact integers.
func formatPart(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) && math.Abs(x) < 1e15 {
		return strconv.FormatInt(int64(x), 10)
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatImag renders the imaginary part with its unit suffix.
func formatImag(b float64) string {
	switch b {
	case 1:
		return "i"
	case -1:
		return "-i"
	default:
		return formatPart(b) + "i"
	}
}
