package game

import (
	"strconv"
	"time"
)

// Timer tracks elapsed play time. It only advances when sampled, and stops
// advancing for good once frozen.
type Timer struct {
	start   time.Time
	elapsed time.Duration
	frozen  bool
}

func NewTimer(start time.Time) *Timer {
	return &Timer{start: start}
}

func (timer *Timer) Sample(now time.Time) {
	if timer.frozen {
		return
	}
	if elapsed := now.Sub(timer.start); elapsed > timer.elapsed {
		timer.elapsed = elapsed
	}
}

func (timer *Timer) Freeze() {
	timer.frozen = true
}

func (timer *Timer) IsFrozen() bool {
	return timer.frozen
}

func (timer *Timer) Elapsed() time.Duration {
	return timer.elapsed
}

func (timer *Timer) Seconds() int {
	return int(timer.elapsed / time.Second)
}

func (timer *Timer) String() string {
	return strconv.Itoa(timer.Seconds())
}
