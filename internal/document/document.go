// SPDX-License-Identifier: MIT

// Package document decodes workload files for the lvalgebra command.
//
// A document names matrices and graphs:
//
//	matrices:
//	  a: { rows: [[1, 2], [3, 4]] }
//	  z: { rows: [["1+2i", "3"], ["-i", "0"]] }
//	graphs:
//	  g: { directed: true, vertices: { A: [B], B: [C], C: [A] } }
//	  w: { topology: { kind: wheel, n: 5, ids: symbol }, vertices: { A: [C] } }
//
// A topology block is built first; explicit vertices are then merged into it.
// YAML, TOML and JSON are accepted; the file extension selects the decoder.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvalgebra/builder"
	"github.com/katalvlaran/lvalgebra/graph"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
)

var (
	// ErrUnsupportedFormat indicates an unknown file extension or format name.
	ErrUnsupportedFormat = errors.New("document: unsupported format")

	// ErrNotFound indicates a matrix or graph name absent from the document.
	ErrNotFound = errors.New("document: not found")

	// ErrBadNumber indicates a cell that is not a real or complex literal.
	ErrBadNumber = errors.New("document: bad number")

	// ErrBadTopology indicates a topology block with an unknown ID scheme.
	ErrBadTopology = errors.New("document: bad topology")
)

// Format names.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Document is a decoded workload file.
type Document struct {
	Matrices map[string]MatrixSpec `yaml:"matrices" toml:"matrices" json:"matrices"`
	Graphs   map[string]GraphSpec  `yaml:"graphs" toml:"graphs" json:"graphs"`
}

// MatrixSpec holds raw rows; cells are numbers or literal strings.
type MatrixSpec struct {
	Rows [][]any `yaml:"rows" toml:"rows" json:"rows"`
}

// GraphSpec lists each vertex with the vertices it links to.
type GraphSpec struct {
	Directed bool                `yaml:"directed" toml:"directed" json:"directed"`
	Topology *TopologySpec       `yaml:"topology" toml:"topology" json:"topology"`
	Vertices map[string][]string `yaml:"vertices" toml:"vertices" json:"vertices"`
}

// TopologySpec seeds a graph with a named builder topology before the
// explicit vertices are added. IDs is "numeric" (default), "symbol" or
// "excel".
type TopologySpec struct {
	Kind string `yaml:"kind" toml:"kind" json:"kind"`
	N    int    `yaml:"n" toml:"n" json:"n"`
	IDs  string `yaml:"ids" toml:"ids" json:"ids"`
}

func (t *TopologySpec) build(opts []graph.Option) (*graph.Graph[string], error) {
	con, err := builder.Named(t.Kind, t.N)
	if err != nil {
		return nil, err
	}

	var ids builder.BuilderOption
	switch t.IDs {
	case "", "numeric":
		ids = builder.WithDefaultIDs()
	case "symbol":
		ids = builder.WithSymbolIDs()
	case "excel":
		ids = builder.WithExcelColumnIDs()
	default:
		return nil, fmt.Errorf("%w: ids %q", ErrBadTopology, t.IDs)
	}
	if t.IDs == "symbol" && t.N > 26 {
		return nil, fmt.Errorf("%w: symbol ids need n <= 26, got %d", ErrBadTopology, t.N)
	}

	return builder.BuildGraph(opts, []builder.BuilderOption{ids}, con)
}

// Matrix is a decoded matrix; exactly one field is set.
type Matrix struct {
	Real    *matrix.Real
	Complex *matrix.Complex
}

// IsComplex reports whether any cell carried an imaginary part.
func (m Matrix) IsComplex() bool { return m.Complex != nil }

// String renders whichever matrix is set.
func (m Matrix) String() string {
	if m.Complex != nil {
		return m.Complex.String()
	}

	return m.Real.String()
}

// FormatOf maps a file extension to a format name.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the file at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Decode decodes r as the named format.
func Decode(r io.Reader, format string) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
		if errors.Is(err, io.EOF) {
			err = nil // empty document
		}
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", format, err)
	}

	return &doc, nil
}

// Matrix builds the named matrix. It is complex when any cell has a
// nonzero imaginary part, real otherwise.
func (d *Document) Matrix(name string) (Matrix, error) {
	spec, ok := d.Matrices[name]
	if !ok {
		return Matrix{}, fmt.Errorf("%w: matrix %q", ErrNotFound, name)
	}

	rows := make([][]scalar.Number, len(spec.Rows))
	complexCells := false
	for r, row := range spec.Rows {
		rows[r] = make([]scalar.Number, len(row))
		for c, cell := range row {
			n, err := cellNumber(cell)
			if err != nil {
				return Matrix{}, fmt.Errorf("matrix %q cell (%d,%d): %w", name, r, c, err)
			}
			complexCells = complexCells || n.Im() != 0
			rows[r][c] = n
		}
	}

	if complexCells {
		m, err := matrix.NewComplexFromRows(rows)
		if err != nil {
			return Matrix{}, fmt.Errorf("matrix %q: %w", name, err)
		}

		return Matrix{Complex: m}, nil
	}

	vals := make([][]float64, len(rows))
	for r, row := range rows {
		vals[r] = make([]float64, len(row))
		for c, n := range row {
			vals[r][c] = n.Re()
		}
	}
	m, err := matrix.NewRealFromRows(vals)
	if err != nil {
		return Matrix{}, fmt.Errorf("matrix %q: %w", name, err)
	}

	return Matrix{Real: m}, nil
}

// Graph builds the named graph. A topology block, when present, is built
// first. Every explicit vertex, including link targets that have no entry of
// their own, is then plotted in lexical order before any link is added, so
// the adjacency matrix layout does not depend on map iteration.
func (d *Document) Graph(name string, opts ...graph.Option) (*graph.Graph[string], error) {
	spec, ok := d.Graphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: graph %q", ErrNotFound, name)
	}
	if spec.Directed {
		opts = append([]graph.Option{graph.WithDirected()}, opts...)
	}

	var g *graph.Graph[string]
	if spec.Topology != nil {
		var err error
		if g, err = spec.Topology.build(opts); err != nil {
			return nil, fmt.Errorf("graph %q: %w", name, err)
		}
	} else {
		g = graph.New[string](opts...)
	}
	names := make([]string, 0, len(spec.Vertices))
	for v, links := range spec.Vertices {
		names = append(names, v)
		names = append(names, links...)
	}
	slices.Sort(names)
	names = slices.Compact(names)
	for _, v := range names {
		g.Add(v)
	}
	for _, v := range names {
		if links, ok := spec.Vertices[v]; ok {
			g.Add(v, links...)
		}
	}

	return g, nil
}

// Names returns the sorted matrix and graph names.
func (d *Document) Names() (matrices, graphs []string) {
	for k := range d.Matrices {
		matrices = append(matrices, k)
	}
	for k := range d.Graphs {
		graphs = append(graphs, k)
	}
	slices.Sort(matrices)
	slices.Sort(graphs)

	return matrices, graphs
}
