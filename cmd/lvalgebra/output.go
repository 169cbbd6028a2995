// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalgebra/internal/config"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
)

// result is anything a subcommand prints. JSON output marshals the value,
// human output prints human().
type result interface {
	human() string
}

// emit writes r in the configured output format.
func (a *app) emit(r result) error {
	if a.cfg.Output == config.OutputJSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		_, err = fmt.Fprintln(a.out, string(data))

		return err
	}
	_, err := fmt.Fprintln(a.out, r.human())

	return err
}

type matrixResult struct {
	Op      string     `json:"op"`
	Complex bool       `json:"complex"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Rows    [][]string `json:"rows"`
	text    string
}

func (r matrixResult) human() string { return r.text }

// newMatrixResult renders a *matrix.Real or *matrix.Complex.
func newMatrixResult(op string, m fmt.Stringer) matrixResult {
	r := matrixResult{Op: op, text: m.String()}
	switch x := m.(type) {
	case *matrix.Real:
		r.Width, r.Height = x.Width(), x.Height()
		for _, row := range x.Data() {
			cells := make([]string, len(row))
			for c, v := range row {
				cells[c] = scalar.Real(v).String()
			}
			r.Rows = append(r.Rows, cells)
		}
	case *matrix.Complex:
		r.Complex = true
		r.Width, r.Height = x.Width(), x.Height()
		for _, row := range x.Data() {
			cells := make([]string, len(row))
			for c, v := range row {
				cells[c] = v.String()
			}
			r.Rows = append(r.Rows, cells)
		}
	}
	if r.Rows == nil {
		r.Rows = [][]string{}
	}

	return r
}

type numberResult struct {
	Op    string  `json:"op"`
	Kind  string  `json:"kind"`
	Re    float64 `json:"re"`
	Im    float64 `json:"im"`
	Value string  `json:"value"`
}

func (r numberResult) human() string { return r.Value }

func newNumberResult(op string, n scalar.Number) numberResult {
	return numberResult{Op: op, Kind: n.Kind().String(), Re: n.Re(), Im: n.Im(), Value: n.String()}
}

type integersResult struct {
	Op     string  `json:"op"`
	Values []int64 `json:"values"`
}

func (r integersResult) human() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, " ")
}

type countResult struct {
	Query  string `json:"query"`
	Length int    `json:"length"`
	Count  int64  `json:"count"`
}

func (r countResult) human() string { return strconv.FormatInt(r.Count, 10) }

type boolResult struct {
	Query  string `json:"query"`
	Length int    `json:"length"`
	Result bool   `json:"result"`
}

func (r boolResult) human() string { return strconv.FormatBool(r.Result) }

type cyclesResult struct {
	Vertex string     `json:"vertex"`
	Cycles [][]string `json:"cycles"`
}

func (r cyclesResult) human() string {
	if len(r.Cycles) == 0 {
		return "no cycles"
	}
	lines := make([]string, len(r.Cycles))
	for i, c := range r.Cycles {
		lines[i] = strings.Join(c, " -> ")
	}

	return strings.Join(lines, "\n")
}
