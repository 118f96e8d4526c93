package coloring

import (
	"errors"
	"io"
)

// K3 and K4 are the only numbers of colors Solve supports.
const (
	K3 = 3
	K4 = 4
)

// epsilon is the integrality tolerance used to decide whether an LP
// variable's value should be treated as 0 or 1 rather than fractional.
const epsilon = 1e-6

// Sentinel errors returned by Solve.
var (
	// ErrInvalidK indicates Options.K was neither 3 nor 4.
	ErrInvalidK = errors.New("coloring: k must be 3 or 4")
	// ErrEmptyGraph indicates the input graph has no vertices.
	ErrEmptyGraph = errors.New("coloring: graph has no vertices")
	// ErrUnknownPrecolorVertex indicates a precolored vertex ID is not in the graph.
	ErrUnknownPrecolorVertex = errors.New("coloring: precolored vertex not present in graph")
	// ErrPrecolorOutOfRange indicates a precolor value is outside [0,k).
	ErrPrecolorOutOfRange = errors.New("coloring: precolor value is outside [0,k)")
	// ErrPrecolorConflict indicates two adjacent vertices were precolored alike.
	ErrPrecolorConflict = errors.New("coloring: precoloring assigns the same color to adjacent vertices")
	// ErrInfeasibleRelaxation indicates the LP relaxation itself has no
	// feasible point, which should never happen for the bound/cover
	// constraints this package builds unless the caller's precoloring (or a
	// pathological MaxIterations) makes it so.
	ErrInfeasibleRelaxation = errors.New("coloring: relaxed LP model is infeasible")
)

// Options configures a Solve call.
type Options struct {
	// K is the number of available colors: K3 or K4.
	K int
	// Precolored fixes specific vertices to a given color in [0,K) before
	// solving; Solve rejects a precoloring that conflicts with itself.
	Precolored map[string]int
	// MaxIterations bounds the refine-and-recut loop; 0 selects the default
	// of twice the vertex count.
	MaxIterations int
	// Verbose, when true, writes one progress line per iteration to Out.
	Verbose bool
	// Out receives progress lines when Verbose is true; defaults to
	// io.Discard.
	Out io.Writer
}

// Option mutates an Options value; see the With* constructors.
type Option func(*Options)

// WithK sets the number of colors (K3 or K4).
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithPrecolored fixes the given vertices to the given colors.
func WithPrecolored(colors map[string]int) Option {
	return func(o *Options) { o.Precolored = colors }
}

// WithMaxIterations overrides the default refine-loop iteration bound.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithVerbose enables per-iteration progress lines written to w.
func WithVerbose(w io.Writer) Option {
	return func(o *Options) { o.Verbose = true; o.Out = w }
}

func defaultOptions() *Options {
	return &Options{K: K3, Out: io.Discard}
}

// Result is the outcome of a successful Solve call.
type Result struct {
	// Colors maps every vertex ID to its assigned color in [0,K).
	Colors map[string]int
	// Iterations is how many refine-and-recut rounds ran.
	Iterations int
	// OddCyclesAdded is how many odd cycles received cuts across all
	// iterations (each such cycle adds a >=/<= pair for each of the two bits).
	OddCyclesAdded int
	// NonIntegerAtStop is the non-integer bit census when the loop stopped,
	// before binding-analysis rounding.
	NonIntegerAtStop int
}
