package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netalgo/core"
	"github.com/katalvlaran/netalgo/csvio"
)

// run executes the command tree with args and returns stdout, stderr and
// the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	a := &app{}
	root := newRootCmd(a)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...))

	err := root.Execute()
	if err != nil {
		stderr.WriteString(err.Error())
	}

	return stdout.String(), stderr.String(), exitCode(err)
}

func generate(t *testing.T, args ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.csv")
	stdout, stderr, code := run(t, append([]string{"generate", "-o", path}, args...)...)
	require.Equal(t, ExitSuccess, code, stderr)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Equal(t, path, resp.Output)

	return path
}

func TestGenerate_WritesConnectedGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.csv")
	stdout, stderr, code := run(t, "generate", "--vertices", "15", "--edges", "25", "--seed", "3", "-o", path)
	require.Equal(t, ExitSuccess, code, stderr)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 15, resp.Vertices)
	assert.Equal(t, 25, resp.Edges)
	assert.Equal(t, 1, resp.Components)
	assert.Equal(t, []int{15}, resp.ComponentSizes)
	assert.Positive(t, resp.Diameter)
	assert.Len(t, resp.DiameterPath, resp.Diameter+1)
	assert.Equal(t, int64(3), resp.Seed)
	assert.False(t, resp.Acyclic)
	require.GreaterOrEqual(t, len(resp.Cycle), 4, "witness cycle closes on itself")
	assert.Equal(t, resp.Cycle[0], resp.Cycle[len(resp.Cycle)-1])

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := csvio.Read(f, csvio.ReadOptions{Dim: core.Dim2})
	require.NoError(t, err)
	assert.Equal(t, 15, g.VertexCount())
}

func TestGenerate_Stdout(t *testing.T) {
	stdout, stderr, code := run(t, "generate", "--vertices", "5", "--edges", "4")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "vertex,"))
}

func TestRun_KruskalAndPrimAgree(t *testing.T) {
	path := generate(t, "--vertices", "20", "--edges", "40", "--weight-by-distance")

	stdout, stderr, code := run(t, "run", "kruskal", "prim", "-i", path, "--rescale=false", "--parallel", "2")
	require.Equal(t, ExitSuccess, code, stderr)

	var resp RunResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Results, 2)
	k, p := resp.Results[0].Summary.Spanning, resp.Results[1].Summary.Spanning
	require.NotNil(t, k)
	require.NotNil(t, p)
	assert.Len(t, k.TreeEdges, 19)
	assert.InDelta(t, k.TotalWeight, p.TotalWeight, 1e-9)
	assert.Nil(t, resp.Results[0].Edges, "frames are omitted by default")
}

func TestTSP_WritesFinalTour(t *testing.T) {
	path := generate(t, "--vertices", "12", "--strategy", "cycle")
	out := filepath.Join(t.TempDir(), "tour.csv")

	stdout, stderr, code := run(t, "tsp", "2opt", "--iterations", "300", "-i", path, "-o", out, "--frames")
	require.Equal(t, ExitSuccess, code, stderr)

	var resp RunResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Results, 1)
	tour := resp.Results[0].Summary.Tour
	require.NotNil(t, tour)
	assert.LessOrEqual(t, tour.Length, tour.InitialLength)
	assert.Equal(t, 301, resp.Results[0].Summary.Frames)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	g, err := csvio.Read(f, csvio.ReadOptions{Dim: core.Dim2})
	require.NoError(t, err)
	for i, v := range g.Vertices {
		assert.Equal(t, 2, v.Degree, "vertex %d", i)
	}
}

func TestFamilyCommands_Human(t *testing.T) {
	path := generate(t, "--vertices", "10", "--strategy", "cycle")

	for _, args := range [][]string{
		{"layout", "spectral"},
		{"layout", "fr", "--max-iterations", "20"},
		{"mst"},
		{"color", "edge"},
		{"color"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			stdout, stderr, code := run(t, append(args, "-i", path, "--human")...)
			require.Equal(t, ExitSuccess, code, stderr)
			assert.Contains(t, stdout, "frames")
		})
	}
}

func TestExitCodes(t *testing.T) {
	tmp := t.TempDir()
	badCSV := filepath.Join(tmp, "bad.csv")
	require.NoError(t, os.WriteFile(badCSV, []byte("vertex,1,2\n"), 0o600))
	badConfig := filepath.Join(tmp, "bad.yml")
	require.NoError(t, os.WriteFile(badConfig, []byte("dimension: 7\n"), 0o600))
	tree := generate(t, "--vertices", "6", "--edges", "5")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown algorithm", []string{"run", "bogus", "-i", tree}, ExitError},
		{"wrong family", []string{"mst", "2opt", "-i", tree}, ExitError},
		{"malformed csv", []string{"run", "prim", "-i", badCSV}, ExitDataError},
		{"not hamiltonian", []string{"tsp", "3opt", "-i", tree}, ExitDataError},
		{"bad config", []string{"--config", badConfig, "config"}, ExitConfigError},
		{"bad dim flag", []string{"--dim", "4", "config"}, ExitConfigError},
		{"output with two jobs", []string{"run", "prim", "kruskal", "-i", tree, "-o", filepath.Join(tmp, "x.csv")}, ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, code := run(t, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestConfig_PrintsEffectiveValues(t *testing.T) {
	stdout, stderr, code := run(t, "--seed", "9", "--dim", "3", "config")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "seed: 9")
	assert.Contains(t, stdout, "dimension: 3")
}

func TestExecute_ReportsJSONError(t *testing.T) {
	code := execute([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "run", "bogus"})
	assert.Equal(t, ExitError, code)
}
