package render

import (
	"errors"
	"fmt"
)

// ErrRender matches every rendering or export failure.
var ErrRender = errors.New("render: rendering failed")

// Error records which engine and step failed.
type Error struct {
	Engine Engine
	Op     string
	Err    error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("render: %s %s: %v", e.Engine, e.Op, e.Err)
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrRender.
func (e *Error) Is(target error) bool { return target == ErrRender }

func renderErrorf(engine Engine, op string, err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return err
	}

	return &Error{Engine: engine, Op: op, Err: err}
}
