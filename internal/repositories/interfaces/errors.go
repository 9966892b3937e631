package interfaces

import "errors"

// ErrNotFound is returned when a point lookup matches no document.
var ErrNotFound = errors.New("document not found")
