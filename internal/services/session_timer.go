package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bankist/internal/models"
)

const (
	DefaultSessionTicks        = 120
	DefaultSessionTickInterval = time.Second
)

// Countdown is the session timer state machine without any clock attached.
// Idle -> Active(total) on Start, Active(n) -> Active(n-1) on Tick,
// Active(0) -> Expired, and Reset restarts an active count at total.
type Countdown struct {
	total     int
	remaining int
	state     models.TimerState
}

func NewCountdown(total int) *Countdown {
	if total <= 0 {
		total = DefaultSessionTicks
	}
	return &Countdown{total: total}
}

func (c *Countdown) Start() {
	c.state = models.TimerActive
	c.remaining = c.total
}

// Tick advances one time unit and reports whether this tick expired the count.
// Ticks outside the Active state are ignored.
func (c *Countdown) Tick() bool {
	if c.state != models.TimerActive {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.state = models.TimerExpired
		return true
	}
	return false
}

// Reset restarts an active count. It reports false when nothing is running.
func (c *Countdown) Reset() bool {
	if c.state != models.TimerActive {
		return false
	}
	c.remaining = c.total
	return true
}

func (c *Countdown) Stop() {
	c.state = models.TimerIdle
	c.remaining = 0
}

func (c *Countdown) Remaining() int {
	return c.remaining
}

func (c *Countdown) State() models.TimerState {
	return c.state
}

// TimerSnapshot is a point-in-time view of the session timer
type TimerSnapshot struct {
	State     models.TimerState
	Remaining int
	Label     string
}

// SessionTimer drives a Countdown from a ticker. Each Start or Reset swaps
// in a new run; ticks from a superseded run are dropped under the lock, so
// at most one countdown is ever counting.
type SessionTimer struct {
	mu         sync.Mutex
	countdown  *Countdown
	interval   time.Duration
	generation uint64
	cancel     context.CancelFunc
	onExpire   func()
	wg         sync.WaitGroup
}

func NewSessionTimer(ticks int, interval time.Duration) *SessionTimer {
	if interval <= 0 {
		interval = DefaultSessionTickInterval
	}
	return &SessionTimer{
		countdown: NewCountdown(ticks),
		interval:  interval,
	}
}

// Start begins a full countdown, replacing any run in progress. onExpire is
// called once, from the timer goroutine, if the run reaches zero.
func (t *SessionTimer) Start(onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.onExpire = onExpire
	t.countdown.Start()
	t.launchLocked()
}

// Reset restarts an active countdown at its full duration
func (t *SessionTimer) Reset() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.countdown.Reset() {
		return false
	}
	t.launchLocked()
	return true
}

// Stop halts the countdown and returns it to Idle without calling onExpire
func (t *SessionTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.countdown.Stop()
	t.onExpire = nil
}

// Wait blocks until every timer goroutine has returned
func (t *SessionTimer) Wait() {
	t.wg.Wait()
}

func (t *SessionTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.countdown.Remaining()
}

func (t *SessionTimer) State() models.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.countdown.State()
}

// Label renders the remaining time as mm:ss, one tick per second
func (t *SessionTimer) Label() string {
	return FormatTimerLabel(t.Remaining())
}

func (t *SessionTimer) Snapshot() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	remaining := t.countdown.Remaining()
	return TimerSnapshot{
		State:     t.countdown.State(),
		Remaining: remaining,
		Label:     FormatTimerLabel(remaining),
	}
}

func (t *SessionTimer) launchLocked() {
	t.cancelLocked()

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	t.wg.Add(1)
	go t.run(ctx, t.generation)
}

func (t *SessionTimer) cancelLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.generation++
}

func (t *SessionTimer) run(ctx context.Context, generation uint64) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.mu.Lock()
			if generation != t.generation {
				t.mu.Unlock()
				return
			}
			expired := t.countdown.Tick()
			var onExpire func()
			if expired {
				onExpire = t.onExpire
				t.onExpire = nil
			}
			t.mu.Unlock()

			if expired {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}

// FormatTimerLabel renders seconds as mm:ss
func FormatTimerLabel(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
