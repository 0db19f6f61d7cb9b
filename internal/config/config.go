// Package config loads CLI configuration from a YAML file, a .env file and
// NETALGO_* environment variables, in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netalgo/builder"
	"github.com/katalvlaran/netalgo/coloring"
	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/layout"
	"github.com/katalvlaran/netalgo/prim_kruskal"
	"github.com/katalvlaran/netalgo/tsp"
)

// ErrInvalid indicates an unreadable or inconsistent configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Seed      int64         `yaml:"seed"`
	Dimension int           `yaml:"dimension"`
	Canvas    layout.Canvas `yaml:"canvas"`
	Log       LogConfig     `yaml:"log"`

	Generate GenerateConfig `yaml:"generate"`

	Spring      layout.SpringParams   `yaml:"spring"`
	Fruchterman layout.FRParams       `yaml:"fruchterman"`
	ForceAtlas2 layout.FA2Params      `yaml:"forceatlas2"`
	Spectral    layout.SpectralParams `yaml:"spectral"`

	MST      MSTConfig      `yaml:"mst"`
	TSP      TSPConfig      `yaml:"tsp"`
	Coloring ColoringConfig `yaml:"coloring"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// GenerateConfig mirrors builder.Request with a named strategy.
type GenerateConfig struct {
	Vertices         int    `yaml:"vertices"`
	Edges            int    `yaml:"edges"`
	Connected        bool   `yaml:"connected"`
	Strategy         string `yaml:"strategy"`
	WeightByDistance bool   `yaml:"weight_by_distance"`
}

// MSTConfig mirrors prim_kruskal.MSTOptions.
type MSTConfig struct {
	Method    string `yaml:"method"`
	Root      int    `yaml:"root"`
	Highlight RGB    `yaml:"highlight"`
}

// TSPConfig mirrors tsp.Options with a named algorithm.
type TSPConfig struct {
	Algorithm        string  `yaml:"algorithm"`
	Iterations       int     `yaml:"iterations"`
	Simulations      int     `yaml:"simulations"`
	StartTemperature float64 `yaml:"start_temperature"`
	Cooling          float64 `yaml:"cooling"`
	Highlight        RGB     `yaml:"highlight"`
	Hot              RGB     `yaml:"hot"`
	Cold             RGB     `yaml:"cold"`
}

// ColoringConfig holds the gradient endpoints of both colorings.
type ColoringConfig struct {
	VertexFrom RGB  `yaml:"vertex_from"`
	VertexTo   RGB  `yaml:"vertex_to"`
	EdgeFrom   RGB  `yaml:"edge_from"`
	EdgeTo     RGB  `yaml:"edge_to"`
	Polar      bool `yaml:"polar"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	t := tsp.DefaultOptions()

	return Config{
		Seed:      1,
		Dimension: core.Dim2,
		Canvas:    layout.DefaultCanvas(),
		Log:       LogConfig{Level: "info", Format: "text"},
		Generate: GenerateConfig{
			Vertices:  20,
			Edges:     30,
			Connected: true,
			Strategy:  builder.StrategyUniform.String(),
		},
		Spring:      layout.DefaultSpringParams(),
		Fruchterman: layout.DefaultFRParams(),
		ForceAtlas2: layout.DefaultFA2Params(),
		Spectral:    layout.DefaultSpectralParams(),
		MST: MSTConfig{
			Method:    prim_kruskal.MethodKruskal,
			Highlight: RGB(prim_kruskal.DefaultHighlight),
		},
		TSP: TSPConfig{
			Algorithm:        t.Algo.String(),
			Iterations:       t.Iterations,
			Simulations:      t.Simulations,
			StartTemperature: t.StartTemperature,
			Cooling:          t.Cooling,
			Highlight:        RGB(t.Highlight),
			Hot:              RGB(t.HotColor),
			Cold:             RGB(t.ColdColor),
		},
		Coloring: ColoringConfig{
			VertexFrom: RGB(coloring.DefaultVertexFrom),
			VertexTo:   RGB(coloring.DefaultVertexTo),
			EdgeFrom:   RGB(coloring.DefaultEdgeFrom),
			EdgeTo:     RGB(coloring.DefaultEdgeTo),
		},
	}
}

// Load reads the YAML file at path over Default(). An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w: %w", path, ErrInvalid, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings shared by every command. Algorithm-specific
// values are validated by the algorithms themselves.
func (c *Config) Validate() error {
	if c.Dimension != core.Dim2 && c.Dimension != core.Dim3 {
		return fmt.Errorf("dimension %d: %w", c.Dimension, ErrInvalid)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 || c.Canvas.Depth <= 0 {
		return fmt.Errorf("canvas %+v: %w", c.Canvas, ErrInvalid)
	}
	if _, err := builder.ParseStrategy(c.Generate.Strategy); err != nil {
		return fmt.Errorf("generate: %w: %w", ErrInvalid, err)
	}
	if _, err := tsp.ParseAlgorithm(c.TSP.Algorithm); err != nil {
		return fmt.Errorf("tsp: %w: %w", ErrInvalid, err)
	}
	if c.MST.Method != prim_kruskal.MethodKruskal && c.MST.Method != prim_kruskal.MethodPrim {
		return fmt.Errorf("mst method %q: %w", c.MST.Method, ErrInvalid)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
