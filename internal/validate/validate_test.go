package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/tally/internal/errors"
)

func TestTargetValid(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"108", 108},
		{"  42  ", 42},
		{"1000000000", 1000000000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, unset, err := Target(tt.input)
			require.NoError(t, err)
			assert.False(t, unset)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestTargetEmptyMeansUnset(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", "\n"} {
		value, unset, err := Target(input)
		require.NoError(t, err)
		assert.True(t, unset, "input %q", input)
		assert.Equal(t, 0, value)
	}
}

func TestTargetInvalid(t *testing.T) {
	for _, input := range []string{"0", "-5", "abc", "1.5", "1e3", "½", "10 apples", "1000000001"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := Target(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidTarget))

			ue, ok := errors.AsUserError(err)
			require.True(t, ok)
			assert.NotEmpty(t, ue.Suggestion)
		})
	}
}

func TestStepValid(t *testing.T) {
	n, err := Step("10")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = Step(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStepInvalid(t *testing.T) {
	for _, input := range []string{"", "0", "-1", "ten", "1000001"} {
		_, err := Step(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, errors.ErrInvalidCount), "input %q", input)
	}
}
