package services

import (
	"sync/atomic"
	"testing"
	"time"

	"bankist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_ExpiresAfterFullCount(t *testing.T) {
	c := NewCountdown(DefaultSessionTicks)
	assert.Equal(t, models.TimerIdle, c.State())

	c.Start()
	assert.Equal(t, models.TimerActive, c.State())
	assert.Equal(t, 120, c.Remaining())

	for i := 1; i < DefaultSessionTicks; i++ {
		require.False(t, c.Tick(), "tick %d", i)
	}
	assert.Equal(t, 1, c.Remaining())

	assert.True(t, c.Tick())
	assert.Equal(t, models.TimerExpired, c.State())
	assert.Equal(t, 0, c.Remaining())

	// expiry is reported once
	assert.False(t, c.Tick())
	assert.False(t, c.Reset())
}

func TestCountdown_ResetRestartsCount(t *testing.T) {
	c := NewCountdown(DefaultSessionTicks)
	c.Start()

	for i := 0; i < 119; i++ {
		c.Tick()
	}
	require.Equal(t, 1, c.Remaining())

	assert.True(t, c.Reset())
	assert.Equal(t, 120, c.Remaining())

	for i := 1; i < DefaultSessionTicks; i++ {
		require.False(t, c.Tick())
	}
	assert.True(t, c.Tick())
}

func TestCountdown_IdleIgnoresTicksAndResets(t *testing.T) {
	c := NewCountdown(3)

	assert.False(t, c.Tick())
	assert.False(t, c.Reset())

	c.Start()
	c.Tick()
	c.Stop()
	assert.Equal(t, models.TimerIdle, c.State())
	assert.Equal(t, 0, c.Remaining())
	assert.False(t, c.Tick())
}

func TestNewCountdown_DefaultsNonPositiveTotal(t *testing.T) {
	c := NewCountdown(0)
	c.Start()
	assert.Equal(t, DefaultSessionTicks, c.Remaining())
}

func TestSessionTimer_FiresOnce(t *testing.T) {
	timer := NewSessionTimer(3, time.Millisecond)
	var fired atomic.Int32

	timer.Start(func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, models.TimerExpired, timer.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())

	timer.Stop()
	timer.Wait()
}

func TestSessionTimer_RestartSupersedesPreviousRun(t *testing.T) {
	timer := NewSessionTimer(5, 2*time.Millisecond)
	var first, second atomic.Int32

	timer.Start(func() { first.Add(1) })
	timer.Start(func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())

	timer.Stop()
	timer.Wait()
}

func TestSessionTimer_StopPreventsExpiry(t *testing.T) {
	timer := NewSessionTimer(5, 2*time.Millisecond)
	var fired atomic.Int32

	timer.Start(func() { fired.Add(1) })
	timer.Stop()
	timer.Wait()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, models.TimerIdle, timer.State())
}

func TestSessionTimer_ResetKeepsSessionAlive(t *testing.T) {
	timer := NewSessionTimer(120, time.Hour)
	timer.Start(nil)

	assert.True(t, timer.Reset())
	snapshot := timer.Snapshot()
	assert.Equal(t, models.TimerActive, snapshot.State)
	assert.Equal(t, 120, snapshot.Remaining)
	assert.Equal(t, "02:00", snapshot.Label)
	assert.Equal(t, "02:00", timer.Label())

	timer.Stop()
	assert.False(t, timer.Reset())
	timer.Wait()
}

func TestFormatTimerLabel(t *testing.T) {
	assert.Equal(t, "02:00", FormatTimerLabel(120))
	assert.Equal(t, "01:05", FormatTimerLabel(65))
	assert.Equal(t, "00:09", FormatTimerLabel(9))
	assert.Equal(t, "00:00", FormatTimerLabel(0))
	assert.Equal(t, "00:00", FormatTimerLabel(-3))
}
