package action

import (
	"turntable/internal/engine"
	"turntable/internal/input"
)

// Capture lets at most one event act at a time.
//
// While idle, the first event in snapshot order that satisfies the capture
// predicate becomes the actor. While capturing, the actor stays for as long
// as an event with its ID is present and satisfies the hold predicate; the
// update on which it goes away reports ActorStopped and no new capture is
// considered until the next update.
type Capture[S any] struct {
	capture Predicate[S]
	hold    Predicate[S]

	actor     input.Event
	capturing bool
	started   bool
	stopped   bool

	// Started and Stopped fire with the actor on the corresponding edge.
	Started engine.EventWithArg[input.Event]
	Stopped engine.EventWithArg[input.Event]
}

func NewCapture[S any](capture, hold Predicate[S]) *Capture[S] {
	if hold == nil {
		hold = Always[S]
	}
	return &Capture[S]{capture: capture, hold: hold}
}

func (c *Capture[S]) Update(events []input.Event, settings S) {
	c.started, c.stopped = false, false

	if c.capturing {
		current, ok := find(events, c.actor.ID)
		if ok && c.hold(current, settings) {
			c.actor = *current
			return
		}
		prev := c.actor
		c.actor, c.capturing, c.stopped = input.Event{}, false, true
		c.Stopped.Invoke(prev)
		return
	}

	for i := range events {
		if c.capture(&events[i], settings) {
			c.actor, c.capturing, c.started = events[i], true, true
			c.Started.Invoke(c.actor)
			return
		}
	}
}

// Actor returns the captured event, refreshed from the latest snapshot.
func (c *Capture[S]) Actor() (*input.Event, bool) {
	if !c.capturing {
		return nil, false
	}
	return &c.actor, true
}

func (c *Capture[S]) ActorActing() bool {
	return c.capturing
}

func (c *Capture[S]) ActorStarted() bool {
	return c.started
}

func (c *Capture[S]) ActorStopped() bool {
	return c.stopped
}

func find(events []input.Event, id uint64) (*input.Event, bool) {
	for i := range events {
		if events[i].ID == id {
			return &events[i], true
		}
	}
	return nil, false
}
