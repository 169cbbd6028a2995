// SPDX-License-Identifier: MIT

package scalar

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|; 0 if either is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}

// Coprime reports whether a and b share no divisor other than 1.
func Coprime(a, b int64) bool { return GCD(a, b) == 1 }

// Factorial returns n!.
// Errors: ErrNegativeArgument when n < 0. Values above 20! overflow int64.
func Factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeArgument
	}
	f := int64(1)
	for i := int64(2); i <= n; i++ {
		f *= i
	}

	return f, nil
}

// Divisors returns the positive divisors of n in ascending order.
// n ≤ 0 has no listing and returns nil.
func Divisors(n int64) []int64 {
	if n <= 0 {
		return nil
	}
	var low, high []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	for k := len(high) - 1; k >= 0; k-- {
		low = append(low, high[k])
	}

	return low
}

// Primes returns every prime strictly below n (sieve of Eratosthenes).
func Primes(n int) []int {
	if n < 3 {
		return nil
	}
	composite := make([]bool, n)
	out := make([]int, 0, n/2)
	for i := 2; i < n; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j < n; j += i {
			composite[j] = true
		}
	}

	return out
}
