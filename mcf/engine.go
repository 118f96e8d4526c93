package mcf

// EngineKind names one of the four presentations a min-cost-flow solve can
// be requested under. Every kind is currently serviced by the same
// successive-shortest-augmenting-path implementation (ssp.go); the kind
// and its parameters are accepted for API compatibility with
// callers that select an engine by name, but none of them change the
// algorithm that actually runs.
type EngineKind int

const (
	CapacityScaling EngineKind = iota
	CostScaling
	NetworkSimplex
	CycleCanceling
)

func (k EngineKind) String() string {
	switch k {
	case CapacityScaling:
		return "capacity-scaling"
	case CostScaling:
		return "cost-scaling"
	case NetworkSimplex:
		return "network-simplex"
	case CycleCanceling:
		return "cycle-canceling"
	default:
		return "unknown"
	}
}

// Engine is a tagged parameter bag standing in for what upstream splits
// across an abstract MinCostFlowSolver base and four parameter-only
// subclasses: Kind selects which named engine a caller believes it is
// asking for, and the remaining fields hold that engine's tuning knob,
// defaulted to the upstream defaults named in the four constructors below.
type Engine struct {
	Kind EngineKind

	// ScalingFactor is CapacityScaling's and CostScaling's scaling base.
	ScalingFactor int
	// Method distinguishes CostScaling's augmentation strategy or
	// CycleCanceling's cycle-selection strategy.
	Method string
	// PivotRule selects NetworkSimplex's pivoting strategy.
	PivotRule string
}

// DefaultEngine returns NewCapacityScaling(0) (factor defaulted to 4).
func DefaultEngine() Engine {
	return NewCapacityScaling(0)
}

// NewCapacityScaling returns a CapacityScaling engine; factor <= 0 uses
// the default of 4.
func NewCapacityScaling(factor int) Engine {
	if factor <= 0 {
		factor = 4
	}

	return Engine{Kind: CapacityScaling, ScalingFactor: factor}
}

// NewCostScaling returns a CostScaling engine; an empty method defaults to
// PARTIAL_AUGMENT and a non-positive factor defaults to 16.
func NewCostScaling(method string, factor int) Engine {
	if method == "" {
		method = "PARTIAL_AUGMENT"
	}
	if factor <= 0 {
		factor = 16
	}

	return Engine{Kind: CostScaling, Method: method, ScalingFactor: factor}
}

// NewNetworkSimplex returns a NetworkSimplex engine; an empty pivot rule
// defaults to BLOCK_SEARCH.
func NewNetworkSimplex(pivotRule string) Engine {
	if pivotRule == "" {
		pivotRule = "BLOCK_SEARCH"
	}

	return Engine{Kind: NetworkSimplex, PivotRule: pivotRule}
}

// NewCycleCanceling returns a CycleCanceling engine; an empty method
// defaults to CANCEL_AND_TIGHTEN.
func NewCycleCanceling(method string) Engine {
	if method == "" {
		method = "CANCEL_AND_TIGHTEN"
	}

	return Engine{Kind: CycleCanceling, Method: method}
}
