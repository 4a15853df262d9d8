package nn

import "github.com/pkg/errors"

// Sentinel error kinds for caller bugs. Forward methods panic with an
// error wrapping ErrShapeMismatch before any arithmetic runs;
// constructors panic with an error wrapping ErrInvalidConfig before any
// parameter is allocated. Match with errors.Is.
var (
	// ErrShapeMismatch marks an input whose shape disagrees with the
	// module's declared feature sizes.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidConfig marks a constructor call with non-positive
	// feature counts.
	ErrInvalidConfig = errors.New("invalid configuration")
)
