package fas

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dominance/matrix"
)

const panicNoEdgeValueNaN = "fas: WithNoEdgeValue: threshold must not be NaN"

// Option configures Eades, Order, FeedbackArcs and TopologicalOrder.
type Option func(*options)

// options holds the effective settings.
type options struct {
	noEdge  float64        // W[i][j] > noEdge ⇒ edge
	log     zerolog.Logger // debug diagnostics; Nop by default
	without []Arc          // edges ignored by TopologicalOrder
}

// defaultOptions returns the threshold of matrix.DefaultNoEdgeValue and a silent logger.
func defaultOptions() options {
	return options{
		noEdge: matrix.DefaultNoEdgeValue,
		log:    zerolog.Nop(),
	}
}

// WithNoEdgeValue sets max_noedge_value: only weights strictly above v are
// edges (e.g. 0.5 to ignore single observations in averaged data).
// Panics if v is NaN.
func WithNoEdgeValue(v float64) Option {
	if math.IsNaN(v) {
		panic(panicNoEdgeValueNaN)
	}

	return func(o *options) { o.noEdge = v }
}

// WithLogger installs a logger for debug output (pseudo-source picks and a
// per-run summary).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithoutArcs makes TopologicalOrder ignore the given edges. Only From and
// To are read. Eades and FeedbackArcs ignore this option.
func WithoutArcs(arcs []Arc) Option {
	return func(o *options) { o.without = append(o.without, arcs...) }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Arc is a directed, weighted edge between two identifiers.
type Arc struct {
	From   string
	To     string
	Weight float64
}

// Result captures the outcome of the Eades heuristic.
type Result struct {
	// Order lists identifiers from position 0 (most dominant) to n-1.
	Order matrix.Ordering

	// Position maps each identifier to its index in Order.
	Position map[string]int

	// FeedbackArcs are the edges pointing from a later to an earlier
	// position, ordered by the position of From, then of To.
	FeedbackArcs []Arc

	// FeedbackWeight is the total weight of FeedbackArcs.
	FeedbackWeight float64

	// PseudoSources counts how often the heuristic had to break a strongly
	// connected remainder by removing a non-source vertex.
	PseudoSources int
}
