package elementwise

import "errors"

// Error taxonomy of the elementwise engine. All four kinds are unrecoverable
// at this layer: the engine never retries, never substitutes default values,
// and stops processing as soon as one is detected. The surrounding dispatch
// layer decides how to surface them.
var (
	// ErrShapeMismatch indicates operand shapes that are not broadcast
	// compatible. Surfaced before any output mutation.
	ErrShapeMismatch = errors.New("shapes are not broadcast compatible")

	// ErrUnsupportedType indicates a data type reached the dispatcher with no
	// matching kernel specialization. A gap in the supported type set, not a
	// user input error.
	ErrUnsupportedType = errors.New("unsupported data type")

	// ErrCastNotAllowed indicates the resolved common computation type cannot
	// be safely cast into the requested output type. Checked before any
	// element is computed.
	ErrCastNotAllowed = errors.New("cast to output type not allowed")

	// ErrDomainViolation indicates a per-element function rejected its
	// operands (e.g. integral modulo by zero). The whole call aborts; the
	// element whose computation failed is never written.
	ErrDomainViolation = errors.New("operand outside operation domain")
)
