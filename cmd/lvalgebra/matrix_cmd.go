// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalgebra/internal/document"
	"github.com/katalvlaran/lvalgebra/matrix"
)

var unaryOps = []struct{ name, short string }{
	{"det", "Determinant by first-row cofactor expansion"},
	{"trace", "Sum of the main diagonal"},
	{"inverse", "Adjugate divided by the determinant"},
	{"transpose", "Swap rows and columns"},
	{"minors", "Matrix of minors"},
	{"cofactors", "Matrix of cofactors"},
}

var binaryOps = []struct{ name, short string }{
	{"add", "Elementwise sum"},
	{"sub", "Elementwise difference"},
	{"mul", "Matrix product left·right"},
	{"div", "left · right⁻¹"},
	{"hadamard", "Elementwise product"},
}

func newMatrixCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Real and complex matrix operations on a document",
	}

	for _, op := range unaryOps {
		cmd.AddCommand(newUnaryCmd(a, op.name, op.short))
	}

	var name string
	var exp int
	pow := &cobra.Command{
		Use:   "pow FILE",
		Short: "Integer power; 0 gives the identity, negative powers use the inverse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUnary(args[0], name, "pow", exp)
		},
	}
	pow.Flags().StringVar(&name, "name", "", "matrix name in the document")
	pow.Flags().IntVar(&exp, "exp", 1, "exponent")
	_ = pow.MarkFlagRequired("name")
	cmd.AddCommand(pow)

	for _, op := range binaryOps {
		cmd.AddCommand(newBinaryCmd(a, op.name, op.short))
	}

	return cmd
}

func newUnaryCmd(a *app, op, short string) *cobra.Command {
	var name string
	c := &cobra.Command{
		Use:   op + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUnary(args[0], name, op, 0)
		},
	}
	c.Flags().StringVar(&name, "name", "", "matrix name in the document")
	_ = c.MarkFlagRequired("name")

	return c
}

func newBinaryCmd(a *app, op, short string) *cobra.Command {
	var left, right string
	c := &cobra.Command{
		Use:   op + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBinary(args[0], left, right, op)
		},
	}
	c.Flags().StringVar(&left, "left", "", "left operand name")
	c.Flags().StringVar(&right, "right", "", "right operand name")
	_ = c.MarkFlagRequired("left")
	_ = c.MarkFlagRequired("right")

	return c
}

func (a *app) runUnary(path, name, op string, exp int) error {
	doc, err := a.load(path)
	if err != nil {
		return err
	}
	m, err := doc.Matrix(name)
	if err != nil {
		return err
	}
	a.logger.Debug("lvalgebra: matrix op",
		slog.String("op", op),
		slog.String("name", name),
		slog.Bool("complex", m.IsComplex()))

	var r result
	if m.IsComplex() {
		r, err = unary(m.Complex, op, exp)
	} else {
		r, err = unary(m.Real, op, exp)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, name, err)
	}

	return a.emit(r)
}

func (a *app) runBinary(path, left, right, op string) error {
	doc, err := a.load(path)
	if err != nil {
		return err
	}
	l, err := doc.Matrix(left)
	if err != nil {
		return err
	}
	r, err := doc.Matrix(right)
	if err != nil {
		return err
	}
	a.logger.Debug("lvalgebra: matrix op",
		slog.String("op", op),
		slog.String("left", left),
		slog.String("right", right))

	var out fmt.Stringer
	if l.IsComplex() || r.IsComplex() {
		out, err = binary(promote(l), promote(r), op)
	} else {
		out, err = binary(l.Real, r.Real, op)
	}
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", op, left, right, err)
	}

	return a.emit(newMatrixResult(op, out))
}

// promote widens a real document matrix to complex.
func promote(m document.Matrix) *matrix.Complex {
	if m.IsComplex() {
		return m.Complex
	}

	return m.Real.ToComplex()
}

func unary[M matrix.Numeric[M]](m M, op string, exp int) (result, error) {
	var (
		out M
		err error
	)
	switch op {
	case "det":
		d, err := m.Determinant()
		if err != nil {
			return nil, err
		}

		return newNumberResult(op, d), nil
	case "trace":
		t, err := m.Trace()
		if err != nil {
			return nil, err
		}

		return newNumberResult(op, t), nil
	case "inverse":
		out, err = m.Inverse()
	case "transpose":
		out = m.Transpose()
	case "minors":
		out, err = m.Minors()
	case "cofactors":
		out, err = m.Cofactors()
	case "pow":
		out, err = m.Pow(exp)
	default:
		return nil, fmt.Errorf("unknown matrix operation %q", op)
	}
	if err != nil {
		return nil, err
	}

	return newMatrixResult(op, out), nil
}

func binary[M matrix.Numeric[M]](l, r M, op string) (M, error) {
	switch op {
	case "add":
		return l.Add(r)
	case "sub":
		return l.Sub(r)
	case "mul":
		return l.Mul(r)
	case "div":
		return l.Div(r)
	case "hadamard":
		return l.Hadamard(r)
	default:
		var zero M
		return zero, fmt.Errorf("unknown matrix operation %q", op)
	}
}
