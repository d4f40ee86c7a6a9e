// Package action tracks which inputs are acting on a widget each frame.
//
// Both actions are plain state machines over the frame's input snapshot. The
// conditions they test are values of type Predicate, handed the widget's
// settings explicitly, so nothing here depends on a live input host.
package action

import "turntable/internal/input"

// Predicate decides whether an event satisfies an action's condition.
type Predicate[S any] func(e *input.Event, settings S) bool

// Always accepts every event.
func Always[S any](*input.Event, S) bool {
	return true
}

// Hover tracks every event that satisfies its predicate this frame.
// It keeps nothing from earlier frames.
type Hover[S any] struct {
	predicate Predicate[S]
	acting    []input.Event
}

func NewHover[S any](predicate Predicate[S]) *Hover[S] {
	return &Hover[S]{predicate: predicate}
}

func (h *Hover[S]) Update(events []input.Event, settings S) {
	h.acting = h.acting[:0]
	for i := range events {
		if h.predicate(&events[i], settings) {
			h.acting = append(h.acting, events[i])
		}
	}
}

// Acting returns the events that satisfied the predicate on the last update.
func (h *Hover[S]) Acting() []input.Event {
	return h.acting
}
