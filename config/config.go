// Package config implements the engine's runtime-configurable tunables:
// the coplanarity tolerance epsilon and a recursion-depth safety valve
// for the BSP builder. Grounded on the teacher's project.LoadConfig: a
// YAML-backed struct with the same required-field validation style,
// repurposed from project metadata (name, binary name, Steam app ID) to
// engine tunables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/csg/bsp"
	"github.com/bloodmagesoftware/csg/polygon"
)

// Options holds the engine's runtime-configurable tunables.
type Options struct {
	// Epsilon is the coplanarity tolerance used by every plane
	// classification. Defaults to 1e-5; it must be held constant for the
	// duration of a single Boolean operation.
	Epsilon float64 `yaml:"epsilon"`
	// MaxBuildDepth bounds BSP build recursion depth. 0 means unlimited,
	// matching the teacher's own unbounded recursion. Guards against
	// pathologically large inputs.
	MaxBuildDepth int `yaml:"max_build_depth"`
}

// Default returns the engine's default tunables: epsilon = 1e-5,
// unlimited build depth.
func Default() Options {
	return Options{
		Epsilon:       1e-5,
		MaxBuildDepth: 0,
	}
}

// Load reads and parses a YAML options file at path. Fields absent from
// the file keep their Default() values; a non-positive epsilon or a
// negative max_build_depth is an error.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading %s: %w", path, err)
	}

	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if opts.Epsilon <= 0 {
		return Options{}, fmt.Errorf("'epsilon' must be positive in %s", path)
	}
	if opts.MaxBuildDepth < 0 {
		return Options{}, fmt.Errorf("'max_build_depth' must be >= 0 in %s", path)
	}

	return opts, nil
}

// Apply installs opts as the active engine configuration. It is not
// concurrency-safe to call Apply concurrently with in-flight Boolean
// operations, which assume a fixed epsilon for their duration.
func (o Options) Apply() {
	polygon.Epsilon = o.Epsilon
	bsp.MaxDepth = o.MaxBuildDepth
}
