// SPDX-License-Identifier: MIT

// Package mapio loads and saves mapgraph.Map values as YAML documents.
//
// Two document forms are accepted:
//
//	# explicit edges
//	name: diamond
//	vertices: 4
//	edges:
//	  - {u: 0, v: 1, w: 1}
//	  - {u: 1, v: 2, w: 2}
//
//	# points in the plane (complete Euclidean map, see builder.Euclidean)
//	points:
//	  - [0, 0]
//	  - [3, 4]
//
// Every bad edge or point in a document is reported, not just the first one.
// File access goes through an afero.Fs so callers and tests can swap the OS
// filesystem for an in-memory one.
package mapio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/internal/errs"
	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrNoMap is returned for a document with neither edges/vertices nor points.
var ErrNoMap = errors.New("mapio: document describes no map")

// ErrMixedForms is returned for a document with both edges and points.
var ErrMixedForms = errors.New("mapio: edges and points are mutually exclusive")

// ErrBadPoint is returned for a point that does not have exactly two coordinates.
var ErrBadPoint = errors.New("mapio: point must have two coordinates")

// ErrVertexCount is returned when vertices disagrees with the number of points.
var ErrVertexCount = errors.New("mapio: vertex count mismatch")

// ErrTooManyVertices is returned for a document above MaxVertices vertices.
var ErrTooManyVertices = errors.New("mapio: too many vertices")

// MaxVertices caps the order of a loaded map. mapgraph keeps a dense n×n
// matrix, so 5000 vertices already take about 200 MB.
const MaxVertices = 5000

// EdgeConfig is one undirected weighted edge.
type EdgeConfig struct {
	U int     `yaml:"u"`
	V int     `yaml:"v"`
	W float64 `yaml:"w"`
}

// MapConfig is the data structure of a map document.
type MapConfig struct {
	Name     string       `yaml:"name,omitempty"`
	Vertices int          `yaml:"vertices,omitempty"`
	Edges    []EdgeConfig `yaml:"edges,omitempty"`
	Points   [][]float64  `yaml:"points,omitempty"`
}

// Parse parses a data stream into the map structure. Unknown keys are errors.
func (c *MapConfig) Parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return errs.Context(err, "mapio: could not parse document")
	}

	return nil
}

// NewMap builds the mapgraph.Map the config describes. All edge and point
// errors are collected into one multierror.
func (c *MapConfig) NewMap() (*mapgraph.Map, error) {
	switch {
	case len(c.Points) > 0 && len(c.Edges) > 0:
		return nil, ErrMixedForms
	case len(c.Points) > 0:
		return c.pointsMap()
	case c.Vertices != 0 || len(c.Edges) > 0:
		return c.edgesMap()
	default:
		return nil, ErrNoMap
	}
}

func (c *MapConfig) edgesMap() (*mapgraph.Map, error) {
	if c.Vertices > MaxVertices {
		return nil, fmt.Errorf("vertices=%d, max %d: %w", c.Vertices, MaxVertices, ErrTooManyVertices)
	}
	m, err := mapgraph.New(c.Vertices)
	if err != nil {
		return nil, err
	}

	var reterr error
	for i, e := range c.Edges {
		if err := m.AddEdge(e.U, e.V, e.W); err != nil {
			reterr = errs.Collect(reterr, errs.Context(err, "edge %d", i))
		}
	}
	if reterr != nil {
		return nil, reterr
	}

	return m, nil
}

func (c *MapConfig) pointsMap() (*mapgraph.Map, error) {
	if len(c.Points) > MaxVertices {
		return nil, fmt.Errorf("points=%d, max %d: %w", len(c.Points), MaxVertices, ErrTooManyVertices)
	}
	if c.Vertices != 0 && c.Vertices != len(c.Points) {
		return nil, fmt.Errorf("vertices=%d, points=%d: %w", c.Vertices, len(c.Points), ErrVertexCount)
	}

	var reterr error
	pts := make([][2]float64, len(c.Points))
	for i, p := range c.Points {
		if len(p) != 2 {
			reterr = errs.Collect(reterr, errs.Context(ErrBadPoint, "point %d has %d", i, len(p)))
			continue
		}
		pts[i] = [2]float64{p[0], p[1]}
	}
	if reterr != nil {
		return nil, reterr
	}

	return builder.Euclidean(pts)
}

// ConfigFromMap returns the explicit-edges document for m.
func ConfigFromMap(name string, m *mapgraph.Map) MapConfig {
	c := MapConfig{Name: name, Vertices: m.Order()}
	for _, e := range m.Edges() {
		c.Edges = append(c.Edges, EdgeConfig{U: e.U, V: e.V, W: e.Weight})
	}

	return c
}

// Decode parses a YAML document and builds its map.
func Decode(data []byte) (*mapgraph.Map, error) {
	var c MapConfig
	if err := c.Parse(data); err != nil {
		return nil, err
	}
	m, err := c.NewMap()
	if err != nil {
		if c.Name != "" {
			return nil, errs.Context(err, "map %q", c.Name)
		}
		return nil, err
	}

	return m, nil
}

// Encode renders m as an explicit-edges YAML document.
func Encode(name string, m *mapgraph.Map) ([]byte, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	c := ConfigFromMap(name, m)

	return yaml.Marshal(&c)
}

// Load reads path from fs and decodes it.
func Load(fs afero.Fs, path string) (*mapgraph.Map, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errs.Context(err, "mapio: could not read %s", path)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, errs.Context(err, "mapio: %s", path)
	}

	return m, nil
}

// Save writes m to path on fs, creating parent directories as needed. The
// document name is the file's base name without extension.
func Save(fs afero.Fs, path string, m *mapgraph.Map) error {
	base := filepath.Base(path)
	data, err := Encode(base[:len(base)-len(filepath.Ext(base))], m)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errs.Context(err, "mapio: could not create directory for %s", path)
	}

	return errs.Context(afero.WriteFile(fs, path, data, 0644), "mapio: could not write %s", path)
}
