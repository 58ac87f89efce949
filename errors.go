package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotFound is returned when a direct getter or an update targets a key, value or item that is not in the collection.
	ErrNotFound errorkit.Error = "err-not-found"
	// ErrConflict is returned when an insert would break the uniqueness invariant of the collection.
	ErrConflict errorkit.Error = "err-conflict"
	// ErrInvalidWeight is returned for a non-positive or non-finite weight, or for a roll outside the table's weight range.
	ErrInvalidWeight errorkit.Error = "err-invalid-weight"
	// ErrEmpty is returned when a random draw is requested from a table that has no items.
	ErrEmpty errorkit.Error = "err-empty"
)
