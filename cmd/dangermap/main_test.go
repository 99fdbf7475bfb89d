package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kass/go-danger-map/internal/config"
	"github.com/kass/go-danger-map/pkg/export"
	"github.com/kass/go-danger-map/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleConfig() *config.Config {
	return &config.Config{
		Scenario: config.SampleScenario(),
		Map: config.MapConfig{
			Zoom:        14,
			SafeColor:   "green",
			DangerColor: "red",
			BorderColor: "crimson",
			FillColor:   "crimson",
		},
	}
}

func TestOptionsFromConfig(t *testing.T) {
	c := sampleConfig()
	c.Map.DedupeSegments = true
	c.Map.DistanceModel = "spherical"

	opts := optionsFromConfig(c)
	require.NotNil(t, opts.Zoom)
	assert.Equal(t, 14.0, *opts.Zoom)
	assert.Equal(t, c.Scenario.Labels, opts.Labels)
	assert.True(t, opts.DedupeSegments)
	assert.Equal(t, "spherical", opts.DistanceModel)
}

func TestBuildSampleScenario(t *testing.T) {
	res, err := buildFromConfig(sampleConfig())
	require.NoError(t, err)

	assert.Len(t, res.Markers, 5)
	assert.Empty(t, res.Skipped())
	assert.Equal(t, 20, res.Segments)
	require.Len(t, res.Assessments, 5)

	// Homes 2 (~810 m) and 4 (~948 m) fall inside the 950 m zone
	assert.Equal(t, 2, res.Dangerous())
	assert.Equal(t, models.Safe, res.Assessments[0].Safety)
	assert.Equal(t, models.Safe, res.Assessments[1].Safety)
	assert.Equal(t, models.Dangerous, res.Assessments[2].Safety)
	assert.Equal(t, models.Safe, res.Assessments[3].Safety)
	assert.Equal(t, models.Dangerous, res.Assessments[4].Safety)
	assert.InDelta(t, 948.3, res.Assessments[4].DistanceMeters, 1.0)
}

func TestRenderSummary(t *testing.T) {
	c := sampleConfig()
	c.Scenario.Labels = c.Scenario.Labels[:2]

	res, err := buildFromConfig(c)
	require.NoError(t, err)

	out := renderSummary(res)
	assert.Contains(t, out, "Danger zone")
	assert.Contains(t, out, "Segments")
	assert.Contains(t, out, "no label for incident 2")
	assert.Contains(t, out, "no label for incident 4")

	table := renderAssessments(res)
	assert.Contains(t, table, "dangerous")
	assert.Contains(t, table, "safe")
}

// execute runs the root command with args and restores the global
// flag state afterwards.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		configFile, verbose, withGeoJSON, dedupe, force = "", false, false, false, false
		for _, c := range []*cobra.Command{rootCmd, renderCmd, classifyCmd, initCmd} {
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
		zap.ReplaceGlobals(zap.NewNop())
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const twoIncidents = `
scenario:
  radius_meters: 950
  incidents:
    - {lat: 40.3507, lon: -3.8193}
    - {lat: 40.3493, lon: -3.8061}
  homes:
    - {lat: 40.35, lon: -3.8127}
map:
  dedupe_segments: false
log:
  level: error
`

func TestClassifyDedupeFlagOverridesConfig(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, twoIncidents)

	require.NoError(t, execute(t, "classify", "--config", path, "--dedupe"))
	assert.True(t, cfg.Map.DedupeSegments)
}

func TestClassifyKeepsConfigWithoutFlag(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, twoIncidents)

	require.NoError(t, execute(t, "classify", "--config", path))
	assert.False(t, cfg.Map.DedupeSegments)
	assert.Len(t, cfg.Scenario.Incidents, 2)
}

func TestRenderWritesFiles(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, twoIncidents)
	out := t.TempDir()

	orig := outputDir
	outputDir = func() (string, error) { return out, nil }
	t.Cleanup(func() { outputDir = orig })

	require.NoError(t, execute(t, "render", "--config", path, "--geojson", "--dedupe"))
	assert.True(t, cfg.Output.GeoJSON)
	assert.True(t, cfg.Map.DedupeSegments)

	page, err := os.ReadFile(filepath.Join(out, export.HTMLFileName))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(page), "L.polyline("))

	_, err = os.Stat(filepath.Join(out, export.GeoJSONFileName))
	assert.NoError(t, err)
}

func TestRenderFailsOnEmptyIncidents(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
scenario:
  incidents: []
  homes:
    - {lat: 40.35, lon: -3.8127}
log:
  level: error
`)
	out := t.TempDir()

	orig := outputDir
	outputDir = func() (string, error) { return out, nil }
	t.Cleanup(func() { outputDir = orig })

	assert.Error(t, execute(t, "render", "--config", path))
	_, err := os.Stat(filepath.Join(out, export.HTMLFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestInitRefusesThenForceOverwrites(t *testing.T) {
	dir := chdirTemp(t)
	existing := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(existing, []byte("map:\n  zoom: 3\nlog:\n  level: error\n"), 0644))

	assert.Error(t, execute(t, "init"))
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "incidents")

	require.NoError(t, execute(t, "init", "--force"))

	loaded, err := config.Load(existing)
	require.NoError(t, err)
	assert.InDelta(t, 3, loaded.Map.Zoom, 0.001)
	assert.Len(t, loaded.Scenario.Incidents, 5)

	data, err = os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(data), "incidents")
}
