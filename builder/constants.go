// Package builder defines shared constants used by the circuit constructors.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildDiagram is the canonical name for the BuildDiagram orchestrator.
	MethodBuildDiagram = "BuildDiagram"
	// MethodJ is the canonical name for the J constructor.
	MethodJ = "J"
	// MethodCZ is the canonical name for the CZ constructor.
	MethodCZ = "CZ"
	// MethodPhase is the canonical name for the Phase constructor.
	MethodPhase = "Phase"
	// MethodRandomLayers is the canonical name for the RandomLayers constructor.
	MethodRandomLayers = "RandomLayers"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinQubits is the smallest circuit width.
const MinQubits = 1

// MinDepth is the smallest RandomLayers depth.
const MinDepth = 1

//-----------------------------------------------------------------------------
// Defaults and bounds
//-----------------------------------------------------------------------------

// DefaultCZProbability is the CZ density of RandomLayers without WithCZProbability.
const DefaultCZProbability = 0.5

// DefaultPhaseDenominator makes RandomLayers draw phases from multiples of π/4.
const DefaultPhaseDenominator int64 = 4

// MinProbability and MaxProbability bound WithCZProbability, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
