package fastcdc

import "errors"

// Error taxonomy (spec §7). Callers use errors.Is against these sentinels;
// wrapped errors carry the offending value via fmt.Errorf("%w: ...").
var (
	// ErrInvalidParameter is returned when a chunking parameter is out of
	// the bounds in spec §6, or when min/avg/max are not ordered
	// min <= avg <= max. Raised eagerly at construction time.
	ErrInvalidParameter = errors.New("fastcdc: invalid parameter")

	// ErrSourceOpenFailure is returned when the source adapter could not
	// open or map the input given to FromPath (bad path, permission
	// denied, a file that cannot be memory-mapped).
	ErrSourceOpenFailure = errors.New("fastcdc: source open failure")

	// ErrSourceReadFailure is returned when a read from the underlying
	// source fails mid-stream. Chunks already yielded remain valid.
	ErrSourceReadFailure = errors.New("fastcdc: source read failure")

	// ErrInvalidInputType is returned when the value passed to From does
	// not conform to any of the accepted source forms.
	ErrInvalidInputType = errors.New("fastcdc: unsupported source type")
)
