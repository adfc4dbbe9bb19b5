package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testConfig = `
log: {level: error}
scenarios:
  - name: before
    source: 0
    sink: 3
    vehicles: 4
    topology: {kind: braess}
  - name: after
    source: 0
    sink: 3
    vehicles: 4
    topology: {kind: braess, shortcut: true}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roadload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	return path
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "run", "-c", writeConfig(t), "--series")
	require.NoError(t, err)

	var reports []scenarioReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "before", reports[0].Name)
	assert.Equal(t, 4, reports[0].Vehicles)
	assert.InDelta(t, 180.08, float64(reports[0].Final), 1e-9)
	assert.Len(t, reports[0].Series, 4)
	assert.Equal(t, []pathCount{{Path: "0→1→3", Vehicles: 2}, {Path: "0→2→3", Vehicles: 2}}, reports[0].Paths)
	assert.Equal(t, "after", reports[1].Name)
	assert.Equal(t, 4, reports[1].Paths[0].Vehicles)
}

func TestRun_NamedScenarioYAML(t *testing.T) {
	out, err := execute(t, "run", "after", "-c", writeConfig(t), "-o", "yaml")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "after", reports[0]["name"])
	assert.NotContains(t, reports[0], "series")
}

func TestRun_UnknownScenario(t *testing.T) {
	_, err := execute(t, "run", "nope", "-c", writeConfig(t))
	assert.Error(t, err)
}

func TestRun_MissingConfig(t *testing.T) {
	_, err := execute(t, "run", "-c", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestRun_BadOutputFlag(t *testing.T) {
	_, err := execute(t, "run", "-c", writeConfig(t), "-o", "xml")
	assert.Error(t, err)
}

func TestCompare_Braess(t *testing.T) {
	out, err := execute(t, "compare", "--braess", "-n", "4000", "--log-level", "error")
	require.NoError(t, err)

	var rep compareReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.InDelta(t, 260000, float64(rep.Before.Final), 1e-6)
	assert.InDelta(t, 340000, float64(rep.After.Final), 1e-6)
	assert.True(t, rep.Delta.Paradox)
}

func TestCompare_Named(t *testing.T) {
	out, err := execute(t, "compare", "before", "after", "-c", writeConfig(t))
	require.NoError(t, err)

	var rep compareReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "before", rep.Before.Name)
	assert.False(t, rep.Delta.Paradox)
}

func TestCompare_Args(t *testing.T) {
	_, err := execute(t, "compare", "before", "-c", writeConfig(t))
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	out, err := execute(t, "paths", "after", "-c", writeConfig(t))
	require.NoError(t, err)

	var got []pathReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "0→1→2→3", got[0].Path)
	assert.Equal(t, number(5), got[0].FreeFlow)
	assert.Equal(t, number(45), got[1].FreeFlow)
}

func TestNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]number{1.5, number(math.Inf(1)), number(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, "+Inf", "NaN"]`, string(b))
}
