package engine

import "fmt"

// NotFoundError indicates a mutation targeted an entity that does not
// exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// StateError indicates a toggle was applied to an entity already in the
// requested state (completing a completed goal, undoing a pending one).
type StateError struct {
	Kind  string
	ID    string
	State string
}

func (e StateError) Error() string {
	return fmt.Sprintf("%s %q is already %s", e.Kind, e.ID, e.State)
}
