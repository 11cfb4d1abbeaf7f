package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorMessage(t *testing.T) {
	ue := NewUserError("Target must be positive", "Enter a whole number of 1 or more.")
	assert.Equal(t, "Target must be positive", ue.Error())
}

func TestUserErrorWithField(t *testing.T) {
	ue := NewUserErrorWithField("target", "abc", "Target is not a number", "Enter a whole number.")
	assert.Equal(t, "Target is not a number: 'abc'", ue.Error())
}

func TestAsUserErrorWalksChain(t *testing.T) {
	ue := NewUserError("bad input", "fix it")
	wrapped := fmt.Errorf("%w: %w", ErrInvalidTarget, ue)

	got, ok := AsUserError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "bad input", got.Message)
	assert.True(t, Is(wrapped, ErrInvalidTarget))
}

func TestSystemErrorUnwraps(t *testing.T) {
	inner := fmt.Errorf("disk exploded")
	se := NewSystemError("write failed", inner)

	assert.Contains(t, se.Error(), "write failed")
	assert.True(t, Is(se, inner))
	assert.True(t, IsSystemError(se))
	assert.False(t, IsUserError(se))
}

func TestGetSuggestionSentinel(t *testing.T) {
	s := GetSuggestion(ErrInvalidTarget)
	assert.Contains(t, s, "whole numbers")

	wrapped := Wrap(ErrInvalidTarget, "parsing input")
	assert.Equal(t, s, GetSuggestion(wrapped))
}

func TestGetSuggestionUserError(t *testing.T) {
	ue := NewUserError("bad", "do better")
	assert.Equal(t, "do better", GetSuggestion(ue))
}

func TestGetSuggestionNone(t *testing.T) {
	assert.Equal(t, "", GetSuggestion(nil))
	assert.Equal(t, "", GetSuggestion(fmt.Errorf("mystery")))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))

	msg := FormatError(ErrInvalidTarget)
	assert.Contains(t, msg, "invalid target")
	assert.Contains(t, msg, "whole numbers")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}
