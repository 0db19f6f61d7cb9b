// SPDX-License-Identifier: MIT
// Package: netalgo/csvio

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

// Import caps.
const (
	MaxVertices = 200
	MaxEdges    = 600
)

// rescaleInset is subtracted from each canvas extent when rescaling.
const rescaleInset = 5

// Record kinds.
const (
	kindVertex = "vertex"
	kindEdge   = "edge"
)

// Sentinel errors.
var (
	ErrTooManyVertices  = errors.New("csvio: too many vertices")
	ErrTooManyEdges     = errors.New("csvio: too many edges")
	ErrDegenerateBounds = errors.New("csvio: all vertices share a coordinate")
	ErrMalformed        = errors.New("csvio: malformed record")
)

// ImportedEdgeColor3D replaces black edges imported into a 3D graph.
var ImportedEdgeColor3D = core.Color{R: 211, G: 211, B: 211}

// ReadOptions configures Read.
type ReadOptions struct {
	Dim    int
	Width  float64
	Height float64
	Depth  float64

	// Rescale maps the bounding box of the input onto the canvas.
	Rescale bool

	// Rand draws missing z coordinates in 3D. Nil means a source seeded with 1.
	Rand *rand.Rand
}

// DefaultReadOptions returns a 2D, 500×500×500, rescaling import.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Dim: core.Dim2, Width: 500, Height: 500, Depth: 500, Rescale: true}
}

// Write emits g as vertex records followed by edge records.
func Write(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	for _, v := range g.Vertices {
		z := ""
		if g.Dim == core.Dim3 {
			z = formatFloat(v.Pos.Z)
		}
		rec := []string{
			kindVertex, formatFloat(v.Pos.X), formatFloat(v.Pos.Y), z,
			strconv.Itoa(v.Degree), formatFloat(v.Size),
			strconv.Itoa(int(v.Color.R)), strconv.Itoa(int(v.Color.G)), strconv.Itoa(int(v.Color.B)),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	for _, e := range g.Edges {
		rec := []string{
			kindEdge, strconv.Itoa(e.Start), strconv.Itoa(e.End),
			strconv.Itoa(int(e.Color.R)), strconv.Itoa(int(e.Color.G)), strconv.Itoa(int(e.Color.B)),
			formatFloat(e.Weight), formatFloat(e.Alpha),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Read parses a graph. Errors carry the offending line number.
//
// Errors: core.ErrBadDimension, ErrTooManyVertices, ErrTooManyEdges,
// ErrDegenerateBounds, ErrMalformed.
func Read(r io.Reader, opts ReadOptions) (*core.Graph, error) {
	g, err := core.NewGraph(opts.Dim)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Read: %w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(rec[0])) {
		case kindVertex:
			if len(g.Vertices) == MaxVertices {
				return nil, fmt.Errorf("Read: line %d: more than %d: %w", line, MaxVertices, ErrTooManyVertices)
			}
			v, err := parseVertex(rec, opts, rng)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", line, err)
			}
			g.Vertices = append(g.Vertices, v)
		case kindEdge:
			if len(g.Edges) == MaxEdges {
				return nil, fmt.Errorf("Read: line %d: more than %d: %w", line, MaxEdges, ErrTooManyEdges)
			}
			e, err := parseEdge(rec, opts)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", line, err)
			}
			g.Edges = append(g.Edges, e)
		default:
			return nil, fmt.Errorf("Read: line %d: kind %q: %w", line, rec[0], ErrMalformed)
		}
	}

	if opts.Rescale && len(g.Vertices) > 0 {
		if err = rescale(g, opts); err != nil {
			return nil, fmt.Errorf("Read: %w", err)
		}
	}
	for i, e := range g.Edges {
		if e.Start < 0 || e.Start >= len(g.Vertices) || e.End < 0 || e.End >= len(g.Vertices) {
			return nil, fmt.Errorf("Read: edge %d (%d,%d): %w: %w", i, e.Start, e.End, ErrMalformed, core.ErrVertexNotFound)
		}
	}
	core.RecomputeDegrees(g)
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("Read: %w: %w", ErrMalformed, err)
	}

	return g, nil
}

// Replace reads a graph and swaps it into dst only on success.
func Replace(dst *core.Graph, r io.Reader, opts ReadOptions) error {
	g, err := Read(r, opts)
	if err != nil {
		return err
	}
	*dst = *g

	return nil
}

func parseVertex(rec []string, opts ReadOptions, rng *rand.Rand) (core.Vertex, error) {
	var v core.Vertex
	// Without the z slot the record has one field fewer.
	off := 0
	switch len(rec) {
	case 9:
	case 8:
		off = -1
	default:
		return v, fmt.Errorf("vertex has %d fields: %w", len(rec), ErrMalformed)
	}

	p := fieldParser{rec: rec}
	v.Pos.X = p.atof(1)
	v.Pos.Y = p.atof(2)
	if off == 0 && strings.TrimSpace(rec[3]) != "" {
		v.Pos.Z = p.atof(3)
	} else if opts.Dim == core.Dim3 {
		v.Pos.Z = rng.Float64() * opts.Depth
	}
	if opts.Dim == core.Dim2 {
		v.Pos.Z = 0
	}
	v.Degree = p.atoi(4 + off)
	v.Size = p.atof(5 + off)
	v.Color = p.rgb(6 + off)

	return v, p.err
}

func parseEdge(rec []string, opts ReadOptions) (core.Edge, error) {
	var e core.Edge
	if len(rec) != 8 {
		return e, fmt.Errorf("edge has %d fields: %w", len(rec), ErrMalformed)
	}
	p := fieldParser{rec: rec}
	e.Start = p.atoi(1)
	e.End = p.atoi(2)
	e.Color = p.rgb(3)
	e.Weight = p.atof(6)
	e.Alpha = p.atof(7)
	if opts.Dim == core.Dim3 && e.Color == (core.Color{}) {
		e.Color = ImportedEdgeColor3D
	}

	return e, p.err
}

// fieldParser keeps the first conversion error.
type fieldParser struct {
	rec []string
	err error
}

func (p *fieldParser) atof(i int) float64 {
	if p.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(p.rec[i]), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		p.err = fmt.Errorf("field %d %q: %w", i, p.rec[i], ErrMalformed)
	}

	return f
}

func (p *fieldParser) atoi(i int) int {
	if p.err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.rec[i]))
	if err != nil {
		p.err = fmt.Errorf("field %d %q: %w", i, p.rec[i], ErrMalformed)
	}

	return n
}

func (p *fieldParser) rgb(i int) core.Color {
	var ch [3]uint8
	for k := range ch {
		if p.err != nil {
			return core.Color{}
		}
		n, err := strconv.ParseUint(strings.TrimSpace(p.rec[i+k]), 10, 8)
		if err != nil {
			p.err = fmt.Errorf("field %d %q: %w", i+k, p.rec[i+k], ErrMalformed)
			return core.Color{}
		}
		ch[k] = uint8(n)
	}

	return core.Color{R: ch[0], G: ch[1], B: ch[2]}
}

// rescale maps each axis from [min,max] onto [0, extent-rescaleInset].
func rescale(g *core.Graph, opts ReadOptions) error {
	box := r3.Box{Min: g.Vertices[0].Pos, Max: g.Vertices[0].Pos}
	for _, v := range g.Vertices[1:] {
		box.Min = r3.Vec{X: math.Min(box.Min.X, v.Pos.X), Y: math.Min(box.Min.Y, v.Pos.Y), Z: math.Min(box.Min.Z, v.Pos.Z)}
		box.Max = r3.Vec{X: math.Max(box.Max.X, v.Pos.X), Y: math.Max(box.Max.Y, v.Pos.Y), Z: math.Max(box.Max.Z, v.Pos.Z)}
	}
	span := r3.Sub(box.Max, box.Min)
	if span.X == 0 || span.Y == 0 || (opts.Dim == core.Dim3 && span.Z == 0) {
		return fmt.Errorf("bounding box %v: %w", span, ErrDegenerateBounds)
	}

	for i := range g.Vertices {
		p := &g.Vertices[i].Pos
		p.X = (p.X - box.Min.X) * (opts.Width - rescaleInset) / span.X
		p.Y = (p.Y - box.Min.Y) * (opts.Height - rescaleInset) / span.Y
		if opts.Dim == core.Dim3 {
			p.Z = (p.Z - box.Min.Z) * (opts.Depth - rescaleInset) / span.Z
		}
	}

	return nil
}
