package skills

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when an operation references a skill ID that is not
// present in the catalog.
var ErrNotFound = errors.New("skill not found")

// MalformedDefinitionError reports a single definition file that could not be
// read or parsed. It is never fatal to a sync pass: the reconciler skips the
// candidate and continues.
type MalformedDefinitionError struct {
	Path string
	Err  error
}

func (e *MalformedDefinitionError) Error() string {
	return fmt.Sprintf("malformed skill definition %s: %v", e.Path, e.Err)
}

func (e *MalformedDefinitionError) Unwrap() error {
	return e.Err
}

// IsMalformedDefinition reports whether err is (or wraps) a MalformedDefinitionError.
func IsMalformedDefinition(err error) bool {
	var m *MalformedDefinitionError
	return errors.As(err, &m)
}

// PersistenceError reports a failed transactional apply against the storage
// engine. The whole sync pass fails and the in-memory index keeps its
// pre-sync value.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("catalog persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
