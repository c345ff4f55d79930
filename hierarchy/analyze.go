package hierarchy

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dominance/decompose"
	"github.com/katalvlaran/dominance/dominance"
	"github.com/katalvlaran/dominance/fas"
	"github.com/katalvlaran/dominance/matrix"
)

// Report is the outcome of one analysis.
type Report struct {
	Name string

	// Order is the Eades ordering, most dominant first; Rank is its inverse.
	Order matrix.Ordering
	Rank  map[string]int

	// Ordered is the input matrix with rows and columns permuted into Order.
	Ordered *matrix.Weights

	FeedbackArcs   []fas.Arc
	FeedbackWeight float64

	// C, D and R are the decomposition of the input, in input order.
	C, D, R *matrix.Weights
	SIndex  float64

	// TIndex is the transitivity of D under Order.
	TIndex float64

	Scores map[dominance.Method]dominance.Scores

	// Warnings lists non-fatal data problems (missing pairs, BBS not converged).
	Warnings []string
}

// Analyzer runs analyses with a fixed, validated Config.
type Analyzer struct {
	cfg Config
	log zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger routes the diagnostics of every stage to l.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// NewAnalyzer validates cfg and returns an Analyzer.
func NewAnalyzer(cfg Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hierarchy.NewAnalyzer: %w", err)
	}
	cfg.Methods = append([]dominance.Method(nil), cfg.Methods...)
	a := &Analyzer{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a, nil
}

// Config returns a copy of the analyzer configuration.
func (a *Analyzer) Config() Config {
	c := a.cfg
	c.Methods = append([]dominance.Method(nil), a.cfg.Methods...)

	return c
}

// Analyze orders w, decomposes it, measures the transitivity of its dominant
// part and computes the configured scores. name only labels the report and
// log lines.
//
// Errors: matrix.ErrNilMatrix; any failure of a stage is wrapped with the
// stage name.
func (a *Analyzer) Analyze(name string, w *matrix.Weights) (*Report, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("hierarchy.Analyze %q: %w", name, err)
	}
	log := a.log.With().Str("analysis", name).Logger()
	rep := &Report{Name: name, Scores: make(map[dominance.Method]dominance.Scores, len(a.cfg.Methods))}

	// ordering
	ord, err := fas.Eades(w, fas.WithNoEdgeValue(a.cfg.NoEdgeValue), fas.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("hierarchy.Analyze %q: order: %w", name, err)
	}
	rep.Order, rep.Rank = ord.Order, ord.Position
	rep.FeedbackArcs, rep.FeedbackWeight = ord.FeedbackArcs, ord.FeedbackWeight
	if rep.Ordered, err = ord.Order.Permute(w); err != nil {
		return nil, fmt.Errorf("hierarchy.Analyze %q: permute: %w", name, err)
	}

	// decomposition
	cd, err := decompose.CD(w, ord.Order, decompose.WithSIndexPower(a.cfg.SIndexPower), decompose.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("hierarchy.Analyze %q: decompose: %w", name, err)
	}
	rep.C, rep.D, rep.R, rep.SIndex = cd.C, cd.D, cd.R, cd.SIndex
	if cd.SkippedPairs > 0 {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("%d ordered pairs with missing weights excluded", cd.SkippedPairs))
	}
	rep.TIndex, err = decompose.Transitivity(cd.D, ord.Order,
		decompose.WithNoEdgeValue(a.cfg.NoEdgeValue), decompose.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("hierarchy.Analyze %q: transitivity: %w", name, err)
	}

	// scores
	for _, m := range a.cfg.Methods {
		var st dominance.Stats
		s, err := dominance.Compute(m, w,
			dominance.WithDavidsMode(dominance.Mode(a.cfg.DavidsMode)),
			dominance.WithMaxIterations(a.cfg.BBS.MaxIterations),
			dominance.WithTolerance(a.cfg.BBS.Tolerance),
			dominance.WithLogger(log),
			dominance.WithStats(&st),
		)
		if err != nil {
			return nil, fmt.Errorf("hierarchy.Analyze %q: %s: %w", name, m, err)
		}
		if m == dominance.MethodBBS && !st.Converged {
			rep.Warnings = append(rep.Warnings,
				fmt.Sprintf("BBS stopped after %d iterations with residual %g", st.Iterations, st.Residual))
		}
		rep.Scores[m] = s
	}

	log.Debug().
		Int("ids", w.Len()).
		Float64("feedback_weight", rep.FeedbackWeight).
		Float64("s_index", rep.SIndex).
		Float64("t_index", rep.TIndex).
		Int("warnings", len(rep.Warnings)).
		Msg("hierarchy: analysis done")

	return rep, nil
}
