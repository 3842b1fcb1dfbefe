package logmap

// Test-Bridge (White-Box) for Private Mapper Internals
//
// Purpose:
//   - Expose the unexported embed/encode stages and the frozen configuration
//     to logmap_test ONLY, without widening the production API.
//
// Provided Surface:
//   - ExportedMapperEmbed / ExportedMapperEncode: thin pass-throughs to the
//     private pipeline stages.
//   - CacheSize_TestOnly: read-only view of the memoization cache length.
//   - NewRawMapper_TestOnly: constructs a Mapper bypassing option
//     validation, for exercising the defensive ErrUnknownLocation path.
//
// Behavior & Determinism:
//   - Deterministic wrappers; no side effects beyond the wrapped stages.

import "github.com/katalvlaran/spinmap/spin"

var (
	// ExportedMapperEmbed exposes (*Mapper).embed for white-box tests.
	ExportedMapperEmbed = (*Mapper).embed

	// ExportedMapperEncode exposes (*Mapper).encode for white-box tests.
	ExportedMapperEncode = (*Mapper).encode
)

// CacheSize_TestOnly returns the number of memoized basis encodings.
func CacheSize_TestOnly(m *Mapper) int { return len(m.cache) }

// NewRawMapper_TestOnly builds a Mapper directly from raw field values,
// bypassing NewMapper's option validation.
func NewRawMapper_TestOnly(padding complex128, loc EmbedLocation, chop float64) *Mapper {
	return &Mapper{
		padding:  padding,
		location: loc,
		chop:     chop,
		cache:    make(map[spin.Number]*basisOps),
	}
}
