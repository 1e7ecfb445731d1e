package ledger

import "errors"

var (
	// ErrValidation indicates malformed creation input.
	ErrValidation = errors.New("invalid project input")

	// ErrBOQLineNotFound indicates a progress report referenced a BOQ line
	// that does not exist in its project. The append is rejected wholesale.
	ErrBOQLineNotFound = errors.New("linked BOQ line not found")
)
