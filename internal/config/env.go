package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NETALGO_"

// LoadEnvFiles loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped;
// with no arguments ".env" is tried.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w: %w", f, ErrInvalid, err)
		}
	}

	return nil
}

// envBinding applies one NETALGO_* variable.
type envBinding struct {
	name  string
	apply func(c *Config, v string) error
}

var envBindings = []envBinding{
	{"SEED", func(c *Config, v string) error { return parseInt64(v, &c.Seed) }},
	{"DIMENSION", func(c *Config, v string) error { return parseInt(v, &c.Dimension) }},
	{"LOG_LEVEL", func(c *Config, v string) error { c.Log.Level = v; return nil }},
	{"LOG_FORMAT", func(c *Config, v string) error { c.Log.Format = v; return nil }},
	{"CANVAS_WIDTH", func(c *Config, v string) error { return parseFloat(v, &c.Canvas.Width) }},
	{"CANVAS_HEIGHT", func(c *Config, v string) error { return parseFloat(v, &c.Canvas.Height) }},
	{"CANVAS_DEPTH", func(c *Config, v string) error { return parseFloat(v, &c.Canvas.Depth) }},
	{"GENERATE_VERTICES", func(c *Config, v string) error { return parseInt(v, &c.Generate.Vertices) }},
	{"GENERATE_EDGES", func(c *Config, v string) error { return parseInt(v, &c.Generate.Edges) }},
	{"GENERATE_STRATEGY", func(c *Config, v string) error { c.Generate.Strategy = v; return nil }},
	{"TSP_ALGORITHM", func(c *Config, v string) error { c.TSP.Algorithm = v; return nil }},
	{"TSP_ITERATIONS", func(c *Config, v string) error { return parseInt(v, &c.TSP.Iterations) }},
	{"MST_METHOD", func(c *Config, v string) error { c.MST.Method = v; return nil }},
}

// ApplyEnv overrides c from NETALGO_* variables found by lookup
// (os.LookupEnv in production) and revalidates.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok || v == "" {
			continue
		}
		if err := b.apply(c, v); err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, b.name, v, err)
		}
	}

	return c.Validate()
}

func parseInt(s string, dst *int) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	*dst = v

	return nil
}

func parseInt64(s string, dst *int64) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	*dst = v

	return nil
}

func parseFloat(s string, dst *float64) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	*dst = v

	return nil
}
