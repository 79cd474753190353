package domain

import "errors"

var (
	// ErrCorruptData indicates that a stored collection value is not valid
	// JSON. Operations abort without writing when they hit this.
	ErrCorruptData = errors.New("stored collection data is corrupt")

	// ErrClosed indicates that the underlying store has been closed.
	ErrClosed = errors.New("store is closed")
)
