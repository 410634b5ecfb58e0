package metrics_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/metrics"
	"github.com/katalvlaran/lvtour/prim_kruskal"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeDisconnected, metrics.Outcome(prim_kruskal.ErrDisconnected))
	assert.Equal(t, metrics.OutcomeMissingEdge, metrics.Outcome(tsp.ErrMissingEdge))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(tsp.ErrStartOutOfRange))
}

func TestRecorder_CountsSolveOutcomes(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	square, err := builder.Euclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	parts, err := builder.Components([]int{2, 2}, builder.WithSeed(1))
	require.NoError(t, err)
	path, err := mapgraph.New(3)
	require.NoError(t, err)
	require.NoError(t, path.AddEdge(0, 1, 1))
	require.NoError(t, path.AddEdge(1, 2, 1))

	opts := tsp.DefaultOptions()
	opts.Observer = rec
	_, err = tsp.Solve(square, opts)
	require.NoError(t, err)
	_, err = tsp.Solve(square, opts)
	require.NoError(t, err)
	_, err = tsp.Solve(parts, opts)
	require.Error(t, err)

	opts.Method = prim_kruskal.MethodKruskal
	_, err = tsp.Solve(path, opts)
	require.Error(t, err)

	expected := `
# HELP lvtour_solve_total Number of tour builds that have run.
# TYPE lvtour_solve_total counter
lvtour_solve_total{method="kruskal",outcome="missing_edge"} 1
lvtour_solve_total{method="prim",outcome="disconnected"} 1
lvtour_solve_total{method="prim",outcome="ok"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lvtour_solve_total"))
	n, err := testutil.GatherAndCount(reg, "lvtour_tour_mst_ratio")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the successful method has a ratio")
}

func TestRecorder_RatioGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	rec.ObserveSolve(prim_kruskal.MethodPrim, tsp.TSResult{Cost: 6, MSTWeight: 4}, 0, nil)
	expected := `
# HELP lvtour_tour_mst_ratio Tour cost divided by MST weight for the last successful build.
# TYPE lvtour_tour_mst_ratio gauge
lvtour_tour_mst_ratio{method="prim"} 1.5
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lvtour_tour_mst_ratio"))

	// A single-vertex map has MST weight 0; the ratio stays untouched.
	rec.ObserveSolve(prim_kruskal.MethodPrim, tsp.TSResult{}, 0, nil)
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lvtour_tour_mst_ratio"))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	rec.ObserveSolve(prim_kruskal.MethodKruskal, tsp.TSResult{Cost: 3, MSTWeight: 2}, 0, nil)

	fs := afero.NewMemMapFs()
	require.NoError(t, metrics.WriteTextfile(fs, "/lvtour.prom", reg))

	data, err := afero.ReadFile(fs, "/lvtour.prom")
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvtour_solve_total{method="kruskal",outcome="ok"} 1`)
	assert.Contains(t, string(data), `lvtour_tour_mst_ratio{method="kruskal"} 1.5`)

	assert.Error(t, metrics.WriteTextfile(afero.NewReadOnlyFs(fs), "/other.prom", reg))
}
