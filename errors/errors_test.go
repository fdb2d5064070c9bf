package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrTargetExists, "directory blog")
	assert.True(t, Is(err, ErrTargetExists))
	assert.Contains(t, err.Error(), "directory blog")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidArgument,
		ErrEnvironmentUnavailable,
		ErrTargetExists,
		ErrGenerationFailure,
		ErrPatchFailure,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsInvalidArgument(Wrap(ErrInvalidArgument, "bad flag")))
	assert.True(t, IsEnvironmentUnavailable(Wrap(ErrEnvironmentUnavailable, "no docker")))
	assert.True(t, IsTargetExists(Wrap(ErrTargetExists, "blog")))
	assert.True(t, IsGenerationFailure(Wrap(ErrGenerationFailure, "rails new")))
	assert.True(t, IsPatchFailure(Wrap(ErrPatchFailure, "cors")))

	assert.False(t, IsPatchFailure(nil))
	assert.False(t, IsTargetExists(New("unrelated")))
}

func TestNewInvalidArgument(t *testing.T) {
	err := NewInvalidArgument("unknown flag %q", "--bogus")
	assert.True(t, IsInvalidArgument(err))
	assert.Contains(t, err.Error(), `unknown flag "--bogus"`)
}

func TestNewPatchFailure(t *testing.T) {
	cause := New("anchor not found")
	err := NewPatchFailure("queue adapter insertion", cause)
	assert.True(t, IsPatchFailure(err))
	assert.Contains(t, err.Error(), "queue adapter insertion")
	assert.Contains(t, err.Error(), "anchor not found")
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrEnvironmentUnavailable, "start the Docker daemon")
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "start the Docker daemon", hints[0])
}
