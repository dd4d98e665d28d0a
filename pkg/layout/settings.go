package layout

import "strings"

// =============================================================================
// Default Values - Single Source of Truth for Engine and CLI
// =============================================================================

const (
	// DefaultIterations is the default simulation step count for force_directed.
	DefaultIterations = 100

	// DefaultRepulsion is the default repulsion strength for force_directed.
	DefaultRepulsion = 100.0

	// DefaultAttraction is the default spring constant for force_directed.
	DefaultAttraction = 0.1

	// DefaultDamping is the default velocity damping factor for force_directed.
	DefaultDamping = 0.85

	// DefaultSeed is the default random seed for reproducible placement
	// of nodes that enter the simulation without a position.
	DefaultSeed = uint64(42)

	// DefaultLayerSpacing is the default distance between layers (layered).
	DefaultLayerSpacing = 100.0

	// DefaultNodeSpacing is the default distance between layer siblings (layered).
	DefaultNodeSpacing = 80.0
)

// Layer growth directions for the layered strategy.
const (
	DirectionTB = "TB" // top to bottom (default)
	DirectionBT = "BT" // bottom to top
	DirectionLR = "LR" // left to right
	DirectionRL = "RL" // right to left
)

// DefaultDirection is the default layer growth direction.
const DefaultDirection = DirectionTB

// validDirections is the set of supported layer growth directions.
var validDirections = map[string]bool{
	DirectionTB: true,
	DirectionBT: true,
	DirectionLR: true,
	DirectionRL: true,
}

// =============================================================================
// Settings - Per-Algorithm Option Bag
// =============================================================================

// Settings is a named option bag interpreted per algorithm. Unknown
// keys are ignored; missing or mistyped values fall back to defaults.
//
// Recognized options:
//   - force_directed: iterations, repulsion, attraction, damping, seed
//   - layered: direction, layerSpacing, nodeSpacing
//   - manual: none; all settings ignored
type Settings map[string]any

// floatOption reads a numeric option, tolerating the integer and float
// types produced by JSON and TOML decoding.
func (s Settings) floatOption(key string, def float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return def
	}
}

// intOption reads an integer option, truncating float values.
func (s Settings) intOption(key string, def int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// stringOption reads a string option.
func (s Settings) stringOption(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// =============================================================================
// Typed Views
// =============================================================================

// ForceSettings are the resolved options for the force_directed strategy.
type ForceSettings struct {
	Iterations int
	Repulsion  float64
	Attraction float64
	Damping    float64
	Seed       uint64
}

// Force resolves the force_directed options, applying defaults for
// missing values. Values are taken as given: the iteration count and
// damping factor are deliberately caller-controlled, with no clamping
// or convergence checks.
func (s Settings) Force() ForceSettings {
	return ForceSettings{
		Iterations: s.intOption("iterations", DefaultIterations),
		Repulsion:  s.floatOption("repulsion", DefaultRepulsion),
		Attraction: s.floatOption("attraction", DefaultAttraction),
		Damping:    s.floatOption("damping", DefaultDamping),
		Seed:       uint64(s.intOption("seed", int(DefaultSeed))),
	}
}

// LayeredSettings are the resolved options for the layered strategy.
type LayeredSettings struct {
	Direction    string
	LayerSpacing float64
	NodeSpacing  float64
}

// Layered resolves the layered options, applying defaults for missing
// values. Direction is case-insensitive; unrecognized directions fall
// back to TB rather than failing the computation.
func (s Settings) Layered() LayeredSettings {
	dir := strings.ToUpper(s.stringOption("direction", DefaultDirection))
	if !validDirections[dir] {
		dir = DefaultDirection
	}
	return LayeredSettings{
		Direction:    dir,
		LayerSpacing: s.floatOption("layerSpacing", DefaultLayerSpacing),
		NodeSpacing:  s.floatOption("nodeSpacing", DefaultNodeSpacing),
	}
}
