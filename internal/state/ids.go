package state

import "github.com/google/uuid"

// NewShapeID returns a fresh opaque shape id.
func NewShapeID() string {
	return uuid.NewString()
}
