// Package fixtures loads literal polygon-list test scenarios from YAML
// table data instead of inlining every vertex in Go source. It exists
// purely to keep test tables out of Go source for scenarios with many
// vertices; it is never imported by non-test code.
//
// Grounded on the teacher's level.Level/level.Polygon.Outline, which
// describes collision polygons in YAML and feeds them to bsp.Polygon,
// the same producer/consumer boundary between external tessellators and
// this engine's polygon-list interface.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/csg/polygon"
	"github.com/bloodmagesoftware/csg/vector"
	"github.com/bloodmagesoftware/csg/vertex"
)

// VertexDef is one vertex of a PolygonDef: a position and a normal, each
// given as [x, y, z].
type VertexDef struct {
	Pos    [3]float64 `yaml:"pos"`
	Normal [3]float64 `yaml:"normal"`
}

// Vertex converts d to a vertex.Vertex.
func (d VertexDef) Vertex() vertex.Vertex {
	return vertex.New(
		vector.New(d.Pos[0], d.Pos[1], d.Pos[2]),
		vector.New(d.Normal[0], d.Normal[1], d.Normal[2]),
	)
}

// PolygonDef is one polygon: an ordered vertex loop and an opaque shared
// tag (a plain string here, since a YAML scalar can't carry an arbitrary
// Go value; real producers use whatever opaque type fits their domain).
type PolygonDef struct {
	Vertices []VertexDef `yaml:"vertices"`
	Shared   string      `yaml:"shared,omitempty"`
}

// Polygon converts d to a *polygon.Polygon.
func (d PolygonDef) Polygon() *polygon.Polygon {
	vs := make([]vertex.Vertex, len(d.Vertices))
	for i, vd := range d.Vertices {
		vs[i] = vd.Vertex()
	}
	var shared any
	if d.Shared != "" {
		shared = d.Shared
	}
	return polygon.New(vs, shared)
}

// Scenario is a named group of polygons, one entry of a scenarios file.
type Scenario struct {
	Name     string       `yaml:"name"`
	Polygons []PolygonDef `yaml:"polygons"`
}

// Build converts every PolygonDef in the scenario to a *polygon.Polygon.
func (s Scenario) Build() []*polygon.Polygon {
	out := make([]*polygon.Polygon, len(s.Polygons))
	for i, pd := range s.Polygons {
		out[i] = pd.Polygon()
	}
	return out
}

// Load reads a scenarios file (a YAML list of Scenario) from path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return scenarios, nil
}

// Find returns the scenario named name, or an error if no scenario in
// scenarios has that name.
func Find(scenarios []Scenario, name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("no scenario named %q", name)
}
