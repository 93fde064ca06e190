package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixed_Advance(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &Fixed{At: at}

	require.Equal(t, at, f.Now())

	f.Advance(48 * time.Hour)
	require.Equal(t, at.AddDate(0, 0, 2), f.Now())
}

func TestNewReal_TracksWallClock(t *testing.T) {
	c := NewReal()
	before := time.Now()
	got := c.Now()
	require.False(t, got.Before(before))
}
