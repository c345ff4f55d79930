package hierarchy_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dominance/dominance"
	"github.com/katalvlaran/dominance/fas"
	"github.com/katalvlaran/dominance/hierarchy"
	"github.com/katalvlaran/dominance/internal/testutils"
	"github.com/katalvlaran/dominance/matrix"
)

func newAnalyzer(t *testing.T, opts ...hierarchy.Option) *hierarchy.Analyzer {
	t.Helper()
	a, err := hierarchy.NewAnalyzer(hierarchy.DefaultConfig(), opts...)
	require.NoError(t, err)

	return a
}

func TestNewAnalyzer_RejectsInvalidConfig(t *testing.T) {
	cfg := hierarchy.DefaultConfig()
	cfg.SIndexPower = 3
	_, err := hierarchy.NewAnalyzer(cfg)
	require.ErrorIs(t, err, hierarchy.ErrInvalidConfig)
}

// TestAnalyze_Chain runs the whole pipeline on a chain listed bottom-up.
func TestAnalyze_Chain(t *testing.T) {
	w := testutils.MustWeights(t, []string{"C", "B", "A"}, [][]float64{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
	})
	rep, err := newAnalyzer(t).Analyze("chain", w)
	require.NoError(t, err)

	assert.Equal(t, "chain", rep.Name)
	assert.Equal(t, matrix.Ordering{"A", "B", "C"}, rep.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, rep.Rank)
	assert.Equal(t, [][]float64{{0, 10, 0}, {0, 0, 10}, {0, 0, 0}}, rep.Ordered.Rows())
	assert.Empty(t, rep.FeedbackArcs)
	assert.Zero(t, rep.SIndex)
	assert.Equal(t, 1.0, rep.TIndex)
	assert.Empty(t, rep.Warnings)

	require.Len(t, rep.Scores, len(dominance.AllMethods()))
	assert.Equal(t, dominance.Scores{"A": 1, "B": 0.5, "C": 0}, rep.Scores[dominance.MethodLindquist])
	assert.Equal(t, []string{"A", "B", "C"}, rep.Scores[dominance.MethodDavids].Ranked())
	assert.Equal(t, []string{"A", "B", "C"}, rep.Scores[dominance.MethodBBS].Ranked())
}

// TestAnalyze_CycleAndWarnings checks feedback arcs, missing-pair warnings
// and the zerolog warning emitted for them.
func TestAnalyze_CycleAndWarnings(t *testing.T) {
	w := testutils.MustWeights(t, []string{"A", "B", "C", "D"}, [][]float64{
		{0, 5, 0, math.NaN()},
		{0, 0, 3, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
	})
	cfg := hierarchy.DefaultConfig()
	cfg.BBS.MaxIterations = 1000 // the 3-cycle contracts by 1/2 per round
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.WarnLevel)
	a, err := hierarchy.NewAnalyzer(cfg, hierarchy.WithLogger(log))
	require.NoError(t, err)
	rep, err := a.Analyze("cycle", w)
	require.NoError(t, err)

	assert.Equal(t, []fas.Arc{{From: "C", To: "A", Weight: 1}}, rep.FeedbackArcs)
	assert.Equal(t, 1.0, rep.FeedbackWeight)
	assert.Equal(t, []string{"2 ordered pairs with missing weights excluded"}, rep.Warnings)
	assert.Contains(t, buf.String(), `"analysis":"cycle"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestAnalyze_MethodSubsetAndNonConvergence(t *testing.T) {
	cfg := hierarchy.DefaultConfig()
	cfg.Methods = []dominance.Method{dominance.MethodBBS}
	cfg.BBS.MaxIterations = 1
	a, err := hierarchy.NewAnalyzer(cfg)
	require.NoError(t, err)

	rep, err := a.Analyze("short", testutils.Chain(t, []string{"A", "B", "C"}, 10))
	require.NoError(t, err)
	assert.Len(t, rep.Scores, 1)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "BBS stopped after 1 iterations")
}

func TestAnalyze_NilMatrix(t *testing.T) {
	_, err := newAnalyzer(t).Analyze("nil", nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAnalyzer_ConfigIsCopy(t *testing.T) {
	a := newAnalyzer(t)
	cfg := a.Config()
	cfg.Methods[0] = "mutated"
	assert.Equal(t, dominance.MethodDavids, a.Config().Methods[0])
}
