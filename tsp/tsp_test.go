package tsp_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/prim_kruskal"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

// buildDiamond returns the non-complete 4-vertex map
// 0–1 (1), 0–2 (4), 1–2 (2), 1–3 (5), 2–3 (1).
func buildDiamond(t testing.TB) *mapgraph.Map {
	t.Helper()
	m, err := mapgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 1))
	require.NoError(t, m.AddEdge(0, 2, 4))
	require.NoError(t, m.AddEdge(1, 2, 2))
	require.NoError(t, m.AddEdge(1, 3, 5))
	require.NoError(t, m.AddEdge(2, 3, 1))

	return m
}

// buildSquare returns the complete Euclidean map over the unit square corners
// 0(0,0) 1(1,0) 2(1,1) 3(0,1).
func buildSquare(t testing.TB) *mapgraph.Map {
	t.Helper()
	m, err := builder.Euclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	return m
}

// buildEuclidean returns a complete Euclidean map over n random points.
func buildEuclidean(t testing.TB, n int, seed int64) *mapgraph.Map {
	t.Helper()
	pts, err := builder.Points(n, builder.WithSeed(seed))
	require.NoError(t, err)
	m, err := builder.Euclidean(pts)
	require.NoError(t, err)

	return m
}

func TestTour_Chain(t *testing.T) {
	m := buildDiamond(t)
	st := m.NewState()
	_, err := prim_kruskal.Compute(m, st, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)

	tour, err := tsp.Tour(m, st, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
}

func TestTour_StarVisitsLastChildFirst(t *testing.T) {
	m := buildSquare(t)
	st := m.NewState()
	st.Children[0] = []int{1, 2, 3}

	tour, err := tsp.Tour(m, st, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2, 1, 0}, tour)
}

func TestTour_IgnoresStaleVisitedFlags(t *testing.T) {
	m := buildDiamond(t)
	st := m.NewState()
	_, err := prim_kruskal.Compute(m, st)
	require.NoError(t, err)
	for v := range st.Visited {
		st.Visited[v] = true
	}

	tour, err := tsp.Tour(m, st, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
}

func TestTour_SingleVertex(t *testing.T) {
	m, err := mapgraph.New(1)
	require.NoError(t, err)
	st := m.NewState()

	tour, err := tsp.Tour(m, st, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, tour)
}

func TestTour_IncompleteTree(t *testing.T) {
	m, err := builder.Components([]int{3, 4}, builder.WithSeed(1))
	require.NoError(t, err)

	st := m.NewState()
	_, err = prim_kruskal.Compute(m, st, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, err = tsp.Tour(m, st, 0)
	assert.ErrorIs(t, err, tsp.ErrIncompleteTree)
}

func TestTour_Errors(t *testing.T) {
	m := buildSquare(t)

	_, err := tsp.Tour(nil, nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = tsp.Tour(m, mapgraph.NewState(3), 0)
	assert.ErrorIs(t, err, mapgraph.ErrStateSize)

	_, err = tsp.Tour(m, m.NewState(), 4)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, err = tsp.Tour(m, m.NewState(), -1)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	st := m.NewState()
	st.Children[0] = []int{9}
	_, err = tsp.Tour(m, st, 0)
	assert.ErrorIs(t, err, mapgraph.ErrVertexOutOfRange)

	empty, err := mapgraph.New(0)
	require.NoError(t, err)
	_, err = tsp.Tour(empty, empty.NewState(), 0)
	assert.ErrorIs(t, err, mapgraph.ErrEmptyGraph)
}

func TestTour_IsHamiltonianFromEveryStart(t *testing.T) {
	m := buildEuclidean(t, 30, 42)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		for start := 0; start < m.Order(); start += 7 {
			st := m.NewState()
			_, err := prim_kruskal.Compute(m, st,
				prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(start))
			require.NoError(t, err)

			tour, err := tsp.Tour(m, st, start)
			require.NoError(t, err)
			assert.NoError(t, tsp.ValidateTour(tour, m.Order(), start), "%s from %d", method, start)
		}
	}
}

func TestTourCost(t *testing.T) {
	m := buildSquare(t)

	c, err := tsp.TourCost(m, []int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, c)

	c, err = tsp.TourCost(m, []int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	assert.InDelta(t, 2+2*math.Sqrt2, c, 1e-9)
}

func TestTourCost_Errors(t *testing.T) {
	_, err := tsp.TourCost(buildDiamond(t), []int{0, 1, 2, 3, 0})
	assert.ErrorIs(t, err, tsp.ErrMissingEdge)

	m := buildSquare(t)
	_, err = tsp.TourCost(m, []int{0})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TourCost(m, []int{0, 7, 0})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TourCost(nil, []int{0, 0})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestValidateTour(t *testing.T) {
	assert.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 3, 2}, 4, 2))

	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 0}, 4, 0), tsp.ErrInvalidTour)
	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 1, 3, 0}, 4, 0), tsp.ErrInvalidTour)
	assert.ErrorIs(t, tsp.ValidateTour([]int{1, 0, 2, 3, 1}, 4, 0), tsp.ErrInvalidTour)
	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 1}, 4, 0), tsp.ErrInvalidTour)
	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 0}, 4, 5), tsp.ErrStartOutOfRange)
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	m := buildSquare(t)
	opts := tsp.DefaultOptions()

	tour, cost, improved, err := tsp.TwoOpt(m, []int{0, 2, 1, 3, 0}, opts)
	require.NoError(t, err)
	assert.True(t, improved)
	assert.Equal(t, 4.0, cost)
	assert.NoError(t, tsp.ValidateTour(tour, 4, 0))
}

func TestTwoOpt_LocalOptimumUnchanged(t *testing.T) {
	m := buildSquare(t)
	in := []int{0, 1, 2, 3, 0}

	tour, cost, improved, err := tsp.TwoOpt(m, in, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, in, tour)
	assert.Equal(t, 4.0, cost)
}

func TestTwoOpt_DoesNotModifyInput(t *testing.T) {
	m := buildSquare(t)
	in := []int{0, 2, 1, 3, 0}

	_, _, _, err := tsp.TwoOpt(m, in, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3, 0}, in)
}

func TestTwoOpt_SkipsMissingEdges(t *testing.T) {
	// Ring 0-1-2-3-0 plus chord 0-2: the only improving-looking move needs 1-3.
	m, err := mapgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 1))
	require.NoError(t, m.AddEdge(1, 2, 10))
	require.NoError(t, m.AddEdge(2, 3, 1))
	require.NoError(t, m.AddEdge(3, 0, 10))
	require.NoError(t, m.AddEdge(0, 2, 1))

	tour, cost, improved, err := tsp.TwoOpt(m, []int{0, 1, 2, 3, 0}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
	assert.Equal(t, 22.0, cost)
}

func TestTwoOpt_Errors(t *testing.T) {
	m := buildSquare(t)

	_, _, _, err := tsp.TwoOpt(m, []int{0, 1, 2, 0}, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	bad := tsp.DefaultOptions()
	bad.Eps = -1
	_, _, _, err = tsp.TwoOpt(m, []int{0, 1, 2, 3, 0}, bad)
	assert.ErrorIs(t, err, tsp.ErrInvalidOptions)

	_, _, _, err = tsp.TwoOpt(buildDiamond(t), []int{0, 1, 2, 3, 0}, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrMissingEdge)
}

func TestSolve_TwoApproximationOnEuclidean(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := buildEuclidean(t, 60, seed)
		for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
			opts := tsp.DefaultOptions()
			opts.Method = method
			opts.StartVertex = int(seed)

			res, err := tsp.Solve(m, opts)
			require.NoError(t, err)
			require.NoError(t, tsp.ValidateTour(res.Tour, m.Order(), opts.StartVertex))

			assert.LessOrEqual(t, res.Cost, 2*res.MSTWeight+tol, "seed %d %s", seed, method)
			assert.GreaterOrEqual(t, res.Cost, res.MSTWeight-tol, "seed %d %s", seed, method)
			assert.Equal(t, method, res.Method)
			assert.False(t, res.Improved)
		}
	}
}

func TestSolve_MethodsAgreeOnMSTWeight(t *testing.T) {
	m := buildEuclidean(t, 80, 9)

	p := tsp.DefaultOptions()
	rp, err := tsp.Solve(m, p)
	require.NoError(t, err)

	k := tsp.DefaultOptions()
	k.Method = prim_kruskal.MethodKruskal
	rk, err := tsp.Solve(m, k)
	require.NoError(t, err)

	assert.InDelta(t, rp.MSTWeight, rk.MSTWeight, tol)
}

func TestSolve_TwoOptNeverWorsens(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := buildEuclidean(t, 50, seed)

		base, err := tsp.Solve(m, tsp.DefaultOptions())
		require.NoError(t, err)

		opts := tsp.DefaultOptions()
		opts.EnableLocalSearch = true
		res, err := tsp.Solve(m, opts)
		require.NoError(t, err)

		require.NoError(t, tsp.ValidateTour(res.Tour, m.Order(), 0))
		assert.LessOrEqual(t, res.Cost, base.Cost+tol, "seed %d", seed)
		assert.Equal(t, base.MSTWeight, res.MSTWeight)
	}
}

func TestSolve_Square(t *testing.T) {
	m := buildSquare(t)

	res, err := tsp.Solve(m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2, 0}, res.Tour)
	assert.InDelta(t, 2+2*math.Sqrt2, res.Cost, 1e-9)
	assert.Equal(t, 3.0, res.MSTWeight)

	opts := tsp.DefaultOptions()
	opts.EnableLocalSearch = true
	res, err = tsp.Solve(m, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2, 1, 0}, res.Tour)
	assert.Equal(t, 4.0, res.Cost)
	assert.True(t, res.Improved)
}

func TestSolve_SmallMaps(t *testing.T) {
	one, err := builder.Euclidean([][2]float64{{5, 5}})
	require.NoError(t, err)
	res, err := tsp.Solve(one, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Tour)
	assert.Zero(t, res.Cost)

	two, err := builder.Euclidean([][2]float64{{0, 0}, {3, 4}})
	require.NoError(t, err)
	opts := tsp.DefaultOptions()
	opts.StartVertex = 1
	opts.EnableLocalSearch = true
	res, err = tsp.Solve(two, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, res.Tour)
	assert.Equal(t, 10.0, res.Cost)
}

func TestSolve_Errors(t *testing.T) {
	m := buildSquare(t)

	_, err := tsp.Solve(nil, tsp.DefaultOptions())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty, err := mapgraph.New(0)
	require.NoError(t, err)
	_, err = tsp.Solve(empty, tsp.DefaultOptions())
	assert.ErrorIs(t, err, mapgraph.ErrEmptyGraph)

	opts := tsp.DefaultOptions()
	opts.StartVertex = 4
	_, err = tsp.Solve(m, opts)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	opts = tsp.DefaultOptions()
	opts.Method = "boruvka"
	_, err = tsp.Solve(m, opts)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	opts = tsp.DefaultOptions()
	opts.TwoOptMaxIters = -1
	_, err = tsp.Solve(m, opts)
	assert.ErrorIs(t, err, tsp.ErrInvalidOptions)

	// Connected but not complete: the walk shortcuts 3 → 0.
	_, err = tsp.Solve(buildDiamond(t), tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrMissingEdge)

	parts, err := builder.Components([]int{2, 3}, builder.WithSeed(1))
	require.NoError(t, err)
	_, err = tsp.Solve(parts, tsp.DefaultOptions())
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

type recordingObserver struct {
	methods []string
	errs    []error
	costs   []float64
}

func (o *recordingObserver) ObserveSolve(method string, res tsp.TSResult, elapsed time.Duration, err error) {
	o.methods = append(o.methods, method)
	o.errs = append(o.errs, err)
	o.costs = append(o.costs, res.Cost)
}

func TestSolve_ReportsToObserver(t *testing.T) {
	obs := &recordingObserver{}
	opts := tsp.DefaultOptions()
	opts.Observer = obs

	_, err := tsp.Solve(buildSquare(t), opts)
	require.NoError(t, err)
	_, err = tsp.Solve(buildDiamond(t), opts)
	require.Error(t, err)

	require.Len(t, obs.methods, 2)
	assert.Equal(t, []string{prim_kruskal.MethodPrim, prim_kruskal.MethodPrim}, obs.methods)
	assert.NoError(t, obs.errs[0])
	assert.ErrorIs(t, obs.errs[1], tsp.ErrMissingEdge)
	assert.InDelta(t, 2+2*math.Sqrt2, obs.costs[0], 1e-9)
	assert.Zero(t, obs.costs[1])
}
