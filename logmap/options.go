// Package logmap: functional configuration for the mapper.
// This file defines:
//   - EmbedLocation (closed two-variant enumeration),
//   - documented defaults (constants, single source of truth),
//   - With* constructors with strong validation (panic on nonsensical
//     values — programmer error, not input data),
//   - gatherOptions (internal) resolving setters last-writer-wins.
//
// Design goals:
//   - Deterministic behavior: no global state, immutable after construction.
//   - Safe by construction: a Mapper built via NewMapper can never carry an
//     invalid location, padding or chop tolerance.

package logmap

import "math"

// EmbedLocation selects which diagonal block of the enlarged matrix hosts
// the physical spin subspace.
//
//   - Upper — the spin matrix occupies the upper-left block and the padded
//     identity the lower-right:  [[ matrix, 0 ], [ 0, padding·I ]]
//   - Lower — the reverse:       [[ padding·I, 0 ], [ 0, matrix ]]
type EmbedLocation int

const (
	// Upper places the physical block in the upper-left corner (default).
	Upper EmbedLocation = iota

	// Lower places the physical block in the lower-right corner.
	Lower
)

// valid reports whether l is one of the two declared variants.
func (l EmbedLocation) valid() bool { return l == Upper || l == Lower }

// String implements fmt.Stringer for diagnostics.
func (l EmbedLocation) String() string {
	switch l {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	default:
		return "Unknown"
	}
}

// DEFAULTS — single source of truth for zero-option behavior.
const (
	// DefaultPadding is the diagonal value of the unused (padded) subspace.
	DefaultPadding complex128 = 1

	// DefaultLocation embeds the physical block in the upper-left corner.
	DefaultLocation = Upper

	// DefaultChop is the magnitude below which decomposition coefficients
	// are treated as exactly zero (floating-point noise suppression).
	DefaultChop = 1e-14
)

// Internal panic messages (no magic strings).
const (
	panicPaddingInvalid  = "logmap: WithPadding: padding must be finite"
	panicLocationInvalid = "logmap: WithLocation: location must be Upper or Lower"
	panicChopInvalid     = "logmap: WithChop: tolerance must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; NewMapper resolves ...Option
// via gatherOptions and freezes the result for the mapper's lifetime.
type options struct {
	padding  complex128    // DefaultPadding
	location EmbedLocation // DefaultLocation
	chop     float64       // DefaultChop, ≥ 0
}

// WithPadding sets the diagonal value written into the unused subspace of
// every embedded matrix. Real configurations pass a real value; any finite
// complex value is accepted. Panics on NaN/Inf components.
func WithPadding(p complex128) Option {
	if isNonFinite(real(p)) || isNonFinite(imag(p)) {
		panic(panicPaddingInvalid)
	}

	return func(o *options) { o.padding = p }
}

// WithLocation selects the diagonal block hosting the physical subspace.
// Panics when loc is neither Upper nor Lower.
func WithLocation(loc EmbedLocation) Option {
	if !loc.valid() {
		panic(panicLocationInvalid)
	}

	return func(o *options) { o.location = loc }
}

// WithChop sets the numerical chop tolerance applied to decomposition
// coefficients and to the final summed operator. Panics on NaN/Inf or
// negative values.
func WithChop(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicChopInvalid)
	}

	return func(o *options) { o.chop = tol }
}

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins. Pure; stable for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) options {
	o := options{
		padding:  DefaultPadding,
		location: DefaultLocation,
		chop:     DefaultChop,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
