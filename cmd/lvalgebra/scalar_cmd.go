// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalgebra/internal/document"
	"github.com/katalvlaran/lvalgebra/scalar"
)

var unaryFuncs = map[string]func(scalar.Number) scalar.Number{
	"acos": scalar.Acos, "asin": scalar.Asin, "atan": scalar.Atan,
	"acosh": scalar.Acosh, "asinh": scalar.Asinh, "atanh": scalar.Atanh,
	"log": scalar.Log, "log1p": scalar.Log1p, "log2": scalar.Log2, "log10": scalar.Log10,
	"sqrt": scalar.Sqrt, "cbrt": scalar.Cbrt, "exp": scalar.Exp, "expm1": scalar.Expm1,
	"sin": scalar.Sin, "cos": scalar.Cos, "tan": scalar.Tan,
	"sinh": scalar.Sinh, "cosh": scalar.Cosh, "tanh": scalar.Tanh,
	"abs": scalar.Abs, "ceil": scalar.Ceil, "floor": scalar.Floor, "round": scalar.Round,
	"conj": scalar.Number.Conj, "neg": scalar.Number.Neg,
}

var binaryFuncs = map[string]func(a, b scalar.Number) (scalar.Number, error){
	"pow":   func(a, b scalar.Number) (scalar.Number, error) { return scalar.Pow(a, b), nil },
	"atan2": func(a, b scalar.Number) (scalar.Number, error) { return scalar.Atan2(a, b), nil },
	"hypot": func(a, b scalar.Number) (scalar.Number, error) { return scalar.Hypot(a, b), nil },
	"add":   func(a, b scalar.Number) (scalar.Number, error) { return a.Add(b), nil },
	"sub":   func(a, b scalar.Number) (scalar.Number, error) { return a.Sub(b), nil },
	"mul":   func(a, b scalar.Number) (scalar.Number, error) { return a.Mul(b), nil },
	"div":   scalar.Number.Div,
}

var variadicFuncs = map[string]func(...scalar.Number) (scalar.Number, error){
	"average": scalar.Average,
	"stddev":  scalar.StdDeviation,
}

var integerFuncs = map[string]func([]int64) ([]int64, error){
	"gcd": func(v []int64) ([]int64, error) { return pairwise(v, scalar.GCD) },
	"lcm": func(v []int64) ([]int64, error) { return pairwise(v, scalar.LCM) },
	"factorial": func(v []int64) ([]int64, error) {
		if len(v) != 1 {
			return nil, fmt.Errorf("factorial takes one argument, got %d", len(v))
		}
		f, err := scalar.Factorial(v[0])

		return []int64{f}, err
	},
	"divisors": func(v []int64) ([]int64, error) {
		if len(v) != 1 {
			return nil, fmt.Errorf("divisors takes one argument, got %d", len(v))
		}

		return scalar.Divisors(v[0]), nil
	},
	"primes": func(v []int64) ([]int64, error) {
		if len(v) != 1 {
			return nil, fmt.Errorf("primes takes one argument, got %d", len(v))
		}
		ps := scalar.Primes(int(v[0]))
		out := make([]int64, len(ps))
		for i, p := range ps {
			out[i] = int64(p)
		}

		return out, nil
	},
}

func pairwise(v []int64, f func(a, b int64) int64) ([]int64, error) {
	if len(v) < 2 {
		return nil, fmt.Errorf("need at least two arguments, got %d", len(v))
	}
	acc := v[0]
	for _, x := range v[1:] {
		acc = f(acc, x)
	}

	return []int64{acc}, nil
}

// funcNames lists every scalar function, sorted.
func funcNames() []string {
	var names []string
	for k := range unaryFuncs {
		names = append(names, k)
	}
	for k := range binaryFuncs {
		names = append(names, k)
	}
	for k := range variadicFuncs {
		names = append(names, k)
	}
	for k := range integerFuncs {
		names = append(names, k)
	}
	slices.Sort(names)

	return names
}

func newScalarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scalar FUNC VALUE...",
		Short: "Evaluate a real or complex scalar function",
		Long: "Evaluate a scalar function. Values are real or complex literals such as\n" +
			"3, -2.5, 2i or 1-0.5i; put negative values after --.\n\n" +
			"Functions: " + strings.Join(funcNames(), ", "),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScalar(args[0], args[1:])
		},
	}
}

func (a *app) runScalar(fn string, raw []string) error {
	if f, ok := integerFuncs[fn]; ok {
		vals := make([]int64, len(raw))
		for i, s := range raw {
			x, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: argument %q is not an integer", fn, s)
			}
			vals[i] = x
		}
		out, err := f(vals)
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}

		return a.emit(integersResult{Op: fn, Values: out})
	}

	args := make([]scalar.Number, len(raw))
	for i, s := range raw {
		n, err := document.ParseNumber(s)
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
		args[i] = n
	}

	var (
		n   scalar.Number
		err error
	)
	switch {
	case unaryFuncs[fn] != nil:
		if len(args) != 1 {
			return fmt.Errorf("%s takes one argument, got %d", fn, len(args))
		}
		n = unaryFuncs[fn](args[0])
	case binaryFuncs[fn] != nil:
		if len(args) != 2 {
			return fmt.Errorf("%s takes two arguments, got %d", fn, len(args))
		}
		n, err = binaryFuncs[fn](args[0], args[1])
	case variadicFuncs[fn] != nil:
		n, err = variadicFuncs[fn](args...)
	default:
		return fmt.Errorf("unknown function %q", fn)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}

	return a.emit(newNumberResult(fn, n))
}
