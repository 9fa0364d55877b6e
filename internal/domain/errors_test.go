package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &CalcError{Op: "calculation.project", Kind: KindInvalidArgument, Err: root}

	assert.True(t, errors.Is(err, root), "expected errors.Is to match cause")
	assert.True(t, errors.Is(err, ErrInvalidArgument), "expected errors.Is to match sentinel")
	assert.False(t, errors.Is(err, ErrShapeMismatch))

	var got *CalcError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, KindInvalidArgument, got.Kind)
}

func TestCalcErrorMessage(t *testing.T) {
	err := NewError("calculation.merge", KindShapeMismatch, "lengths %d and %d differ", 3, 4)
	assert.Equal(t, "calculation.merge: shape_mismatch: lengths 3 and 4 differ", err.Error())

	withPath := &CalcError{Op: "config.load", Kind: KindNotFound, Path: "x.yaml"}
	assert.Equal(t, "config.load: not_found (path=x.yaml)", withPath.Error())

	var nilErr *CalcError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("compose failed: %w", NewError("calculation.merge", KindShapeMismatch, "bad"))
	assert.True(t, IsKind(err, KindShapeMismatch))
	assert.False(t, IsKind(err, KindInvalidArgument))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.False(t, IsKind(errors.New("plain"), KindShapeMismatch))
}
