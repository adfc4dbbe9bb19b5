package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadload/config"
	"github.com/katalvlaran/roadload/loader"
	"github.com/katalvlaran/roadload/network"
)

const yamlConfig = `
log:
  level: debug
workers: 3
output:
  format: yaml
scenarios:
  - name: before
    source: 0
    sink: 3
    vehicles: 4
    roads:
      - {from: 0, to: 1, congestion: {kind: linear, slope: 0.01}}
      - {from: 0, to: 2, congestion: {kind: constant, value: 45}}
      - {from: 1, to: 3, congestion: {kind: constant, value: 45}}
      - {from: 2, to: 3, congestion: {kind: linear, slope: 0.01}}
  - name: after
    source: 0
    sink: 3
    vehicles: 4
    max_paths: 10
    topology: {kind: braess, shortcut: true}
`

const jsonConfig = `{
  "scenarios": [
    {"name": "grid", "source": 0, "sink": 8, "vehicles": 20,
     "topology": {"kind": "grid", "rows": 3, "cols": 3,
                  "congestion": {"kind": "bpr", "free_flow": 2, "capacity": 5}}}
  ]
}`

const tomlConfig = `
workers = 1

[metrics]
enabled = true
addr = "127.0.0.1:9100"

[[scenarios]]
name = "chain"
source = 0
sink = 2
vehicles = 2

[[scenarios.roads]]
from = 0
to = 1
congestion = { kind = "polynomial", coefficients = [1.0, 0.5] }

[[scenarios.roads]]
from = 1
to = 2
congestion = { kind = "constant", value = 3.0 }
`

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := config.Load(write(t, "roadload.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	require.Len(t, cfg.Scenarios, 2)

	before, err := cfg.Scenario("before")
	require.NoError(t, err)
	assert.Equal(t, network.Node(3), before.Sink)
	require.Len(t, before.Roads, 4)
	assert.Equal(t, 0.01, before.Roads[0].Congestion.Slope)

	after, err := cfg.Scenario("after")
	require.NoError(t, err)
	require.NotNil(t, after.Topology)
	assert.True(t, after.Topology.Shortcut)
	assert.Equal(t, 10, after.MaxPaths)

	_, err = cfg.Scenario("missing")
	assert.ErrorIs(t, err, network.ErrNotFound)
}

func TestLoad_YAMLScenarioRuns(t *testing.T) {
	cfg, err := config.Load(write(t, "roadload.yml", yamlConfig))
	require.NoError(t, err)

	for _, s := range cfg.Scenarios {
		edges, err := s.Edges()
		require.NoError(t, err)
		res, err := loader.Run(edges, s.Source, s.Sink, 1)
		require.NoError(t, err, s.Name)
		switch s.Name {
		case "before":
			assert.InDelta(t, 45.01, res.Final(), 1e-9)
		case "after":
			assert.InDelta(t, 5.02, res.Final(), 1e-9)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	cfg, err := config.Load(write(t, "roadload.json", jsonConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 1)

	sc, err := cfg.Scenarios[0].Compare()
	require.NoError(t, err)
	assert.Len(t, sc.Edges, 12)
	assert.Equal(t, 20, sc.Vehicles)
	assert.Equal(t, 2.0, sc.Edges[0].Time(0))
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := config.Load(write(t, "roadload.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Addr)
	require.Len(t, cfg.Scenarios, 1)

	edges, err := cfg.Scenarios[0].Edges()
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, 2.0, edges[0].Time(2))
	assert.Equal(t, 3.0, edges[1].Time(7))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ROADLOAD_WORKERS", "7")
	t.Setenv("ROADLOAD_LOG__LEVEL", "warn")
	t.Setenv("ROADLOAD_OUTPUT__FORMAT", "json")

	cfg, err := config.Load(write(t, "roadload.yaml", yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestDefault(t *testing.T) {
	t.Setenv("ROADLOAD_METRICS__ENABLED", "true")
	cfg, err := config.Default()
	require.NoError(t, err)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 2, cfg.Workers)
	assert.Empty(t, cfg.Scenarios)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "roadload.ini", "x=1"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cases := map[string]string{
		"no scenarios":   "workers: 1\n",
		"bad log level":  "log: {level: loud}\nscenarios: [{name: a, roads: [{from: 0, to: 1, congestion: {kind: constant, value: 1}}]}]\n",
		"bad output":     "output: {format: xml}\nscenarios: [{name: a, roads: [{from: 0, to: 1, congestion: {kind: constant, value: 1}}]}]\n",
		"no name":        "scenarios: [{roads: [{from: 0, to: 1, congestion: {kind: constant, value: 1}}]}]\n",
		"no roads":       "scenarios: [{name: a}]\n",
		"negative":       "scenarios: [{name: a, vehicles: -1, topology: {kind: braess}}]\n",
		"duplicate name": "scenarios: [{name: a, topology: {kind: braess}}, {name: a, topology: {kind: braess}}]\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "c.yaml", data))
			assert.ErrorIs(t, err, config.ErrInvalid)
			assert.ErrorIs(t, err, network.ErrConfiguration)
		})
	}
}

func TestScenario_EdgesErrors(t *testing.T) {
	bad := config.ScenarioConfig{Name: "x", Roads: []config.RoadConfig{{From: 0, To: 1}}}
	_, err := bad.Edges()
	assert.ErrorIs(t, err, network.ErrConfiguration)

	unknown := config.ScenarioConfig{Name: "y", Topology: &config.TopologyConfig{Kind: "ring"}}
	_, err = unknown.Edges()
	assert.ErrorIs(t, err, config.ErrInvalid)

	tooSmall := config.ScenarioConfig{Name: "z", Topology: &config.TopologyConfig{Kind: "path", N: 1}}
	_, err = tooSmall.Edges()
	assert.ErrorIs(t, err, network.ErrConfiguration)
}

func TestScenario_TopologyPlusRoads(t *testing.T) {
	s := config.ScenarioConfig{
		Name:     "extended",
		Topology: &config.TopologyConfig{Kind: "braess"},
		Roads:    []config.RoadConfig{{From: 1, To: 2, Congestion: congestionConstant(5)}},
	}
	edges, err := s.Edges()
	require.NoError(t, err)
	assert.Len(t, edges, 5)
}
