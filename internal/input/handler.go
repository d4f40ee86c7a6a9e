package input

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoField = errors.New("input handler needs a field")

// Field reports signed distances in the handler's local space.
type Field interface {
	Distance(p mgl32.Vec3) float32
	RayMarch(origin, direction mgl32.Vec3) float32
}

// Handler is the routing handle bound to a field. The host hands it the
// frame's inputs, expressed in the handler's local space, before the frame
// update reads them back.
type Handler struct {
	field  Field
	events []Event
}

func NewHandler(field Field) (*Handler, error) {
	if field == nil {
		return nil, ErrNoField
	}
	return &Handler{field: field}, nil
}

func (h *Handler) Field() Field {
	return h.field
}

// Route replaces the snapshot with events, computing each event's distance
// against the field: pointers by ray march, tips by point distance, hands by
// the closest fingertip.
func (h *Handler) Route(events []Event) {
	h.events = h.events[:0]
	for _, e := range events {
		e.Distance = h.distance(e.Source)
		h.events = append(h.events, e)
	}
}

// Deliver replaces the snapshot with events whose distances the host has
// already computed.
func (h *Handler) Deliver(events []Event) {
	h.events = append(h.events[:0], events...)
}

// Events is the current snapshot. Callers must not modify it.
func (h *Handler) Events() []Event {
	return h.events
}

func (h *Handler) distance(s Source) float32 {
	switch s := s.(type) {
	case Pointer:
		return h.field.RayMarch(s.Origin, s.Direction)
	case Tip:
		return h.field.Distance(s.Origin)
	case Hand:
		d := float32(math.Inf(1))
		for _, p := range []mgl32.Vec3{s.Thumb, s.Index, s.Middle, s.Ring, s.Little} {
			d = min(d, h.field.Distance(p))
		}
		return d
	}
	return float32(math.Inf(1))
}
