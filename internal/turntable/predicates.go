package turntable

import (
	"math"

	"turntable/internal/input"
)

// pointerHover accepts pointers aimed into the field; they drive scrolling.
func pointerHover(e *input.Event, _ Settings) bool {
	_, ok := e.Source.(input.Pointer)
	return ok && e.Distance < 0
}

// touchCapture accepts inputs inside the field with a contact point under
// the outward ramp, so reaching down from above does not grab the rim.
func touchCapture(e *input.Event, s Settings) bool {
	if e.Distance >= 0 {
		return false
	}
	for _, p := range input.ContactPoints(e) {
		h := p.Y() + s.Height
		r := float32(math.Hypot(float64(p.X()), float64(p.Z()))) - s.InnerRadius
		if h < r {
			return true
		}
	}
	return false
}
