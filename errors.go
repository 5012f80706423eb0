package containerx

import "errors"

var (
	// ErrInvalidPriority is the panic value (wrapped) for priorities that cannot be ordered.
	ErrInvalidPriority = errors.New("invalid priority")
)
