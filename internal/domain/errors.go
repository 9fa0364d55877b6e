package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrNotFound        = errors.New("not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindShapeMismatch   ErrorKind = "shape_mismatch"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindNotFound        ErrorKind = "not_found"
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidArgument: ErrInvalidArgument,
	KindShapeMismatch:   ErrShapeMismatch,
	KindInvalidConfig:   ErrInvalidConfig,
	KindNotFound:        ErrNotFound,
}

// CalcError wraps an underlying error with operation context and a kind.
type CalcError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

// NewError builds a CalcError from a formatted message.
func NewError(op string, kind ErrorKind, format string, args ...any) *CalcError {
	return &CalcError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *CalcError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *CalcError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *CalcError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// IsKind helps callers classify errors without depending on calculation internals.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
