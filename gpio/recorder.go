// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpio

import (
	"time"
)

// Event is a single recorded pin operation. Sleeps have a non-zero Delay.
type Event struct {
	Pin   Pin
	Level Level
	Delay time.Duration
}

// IsSleep reports whether the event is a sleep.
func (ev Event) IsSleep() bool {
	return ev.Delay != 0
}

// Recorder is an in-memory Pins that records every operation and tracks
// the current level of each line. It never blocks.
type Recorder struct {
	Events []Event
	Levels [PIN_COUNT]Level

	// FailAfter, if positive, makes the FailAfter'th SetLevel (and every
	// one after it) fail with ErrInjected.
	FailAfter int

	sets int
}

var _ Pins = (*Recorder)(nil)

// Reset clears the recorded events and levels.
func (rc *Recorder) Reset() {
	rc.Events = nil
	rc.Levels = [PIN_COUNT]Level{}
	rc.sets = 0
}

// SetLevel records a level change.
func (rc *Recorder) SetLevel(pin Pin, level Level) (err error) {
	err = checkPin(pin, level)
	if err != nil {
		return
	}

	rc.sets++
	if rc.FailAfter > 0 && rc.sets >= rc.FailAfter {
		err = ErrInjected
		return
	}

	rc.Levels[pin] = level
	rc.Events = append(rc.Events, Event{Pin: pin, Level: level})
	return
}

// Sleep records a delay.
func (rc *Recorder) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	rc.Events = append(rc.Events, Event{Delay: d})
}

// Sets returns only the level changes, in order.
func (rc *Recorder) Sets() (sets []Event) {
	for _, ev := range rc.Events {
		if !ev.IsSleep() {
			sets = append(sets, ev)
		}
	}
	return
}

// Sleeps returns only the delays, in order.
func (rc *Recorder) Sleeps() (delays []time.Duration) {
	for _, ev := range rc.Events {
		if ev.IsSleep() {
			delays = append(delays, ev.Delay)
		}
	}
	return
}

// Shifted returns the data line level at each rising edge of the clock.
func (rc *Recorder) Shifted() (bits []Level) {
	var data, clock Level
	for _, ev := range rc.Events {
		switch {
		case ev.IsSleep():
		case ev.Pin == PIN_DATA:
			data = ev.Level
		case ev.Pin == PIN_CLOCK:
			if ev.Level == HIGH && clock == LOW {
				bits = append(bits, data)
			}
			clock = ev.Level
		}
	}
	return
}
