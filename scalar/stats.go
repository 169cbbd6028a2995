// SPDX-License-Identifier: MIT

package scalar

// Accumulator is a Kahan-compensated running sum over dual-mode values.
// The zero value is an empty real sum ready to use.
//
// The compensation term is tracked per component, so it behaves the same for
// real and complex addends; the sum turns complex as soon as one addend is.
type Accumulator struct {
	sum Number // running total
	c   Number // lost low-order bits
}

// Add folds x into the running sum.
func (a *Accumulator) Add(x Number) {
	y := x.Sub(a.c)
	t := a.sum.Add(y)
	a.c = t.Sub(a.sum).Sub(y)
	a.sum = t
}

// Sum returns the compensated total.
func (a *Accumulator) Sum() Number { return a.sum }

// Summation evaluates fn at start, start+1, … while the index is ≤ end and
// returns the compensated sum. An empty range returns Real(0).
func Summation(fn func(float64) Number, start, end float64) Number {
	var acc Accumulator
	for i := start; i <= end; i++ {
		acc.Add(fn(i))
	}

	return acc.Sum()
}

// Average returns the arithmetic mean of values.
// Errors: ErrEmptyInput when values is empty.
func Average(values ...Number) (Number, error) {
	if len(values) == 0 {
		return Number{}, ErrEmptyInput
	}
	var acc Accumulator
	for _, v := range values {
		acc.Add(v)
	}

	return scaleDown(acc.Sum(), len(values)), nil
}

// StdDeviation returns the population standard deviation sqrt(Σ(x−μ)²/n).
// Complex inputs square the deviation as a complex product, so the result is the
// principal root of the complex variance.
// Errors: ErrEmptyInput when values is empty.
func StdDeviation(values ...Number) (Number, error) {
	mu, err := Average(values...)
	if err != nil {
		return Number{}, err
	}
	var acc Accumulator
	for _, v := range values {
		d := v.Sub(mu)
		acc.Add(d.Mul(d))
	}

	return Sqrt(scaleDown(acc.Sum(), len(values))), nil
}

// scaleDown divides x by a positive count without the error path of Div.
func scaleDown(x Number, n int) Number {
	f := float64(n)
	if x.IsReal() {
		return Real(x.re / f)
	}

	return Complex(x.re/f, x.im/f)
}
