package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values such as preset names.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a scene.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a scene.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by scenes that expose their tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Stat is a single live counter shown on the HUD.
type Stat struct {
	Label string
	Value string
}

// StatsProvider is implemented by scenes that expose per-frame counters.
type StatsProvider interface {
	Stats() []Stat
}
