package collision

import (
	"testing"

	"github.com/arloliu/halotag/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Paths())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(`levels\a`, 1))
	require.NoError(t, tracker.Track(`levels\b`, 2))
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{`levels\a`, `levels\b`}, tracker.Paths())
}

func TestTracker_Errors(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track(`levels\a`, 1))

	require.ErrorIs(t, tracker.Track("", 3), errs.ErrInvalidPath)
	require.ErrorIs(t, tracker.Track(`levels\a`, 1), errs.ErrDuplicatePath)
	require.ErrorIs(t, tracker.Track(`levels\c`, 1), errs.ErrHashCollision)
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track(`levels\a`, 1))

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.NoError(t, tracker.Track(`levels\a`, 1))
}
