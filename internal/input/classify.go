package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// InteractPoint is the single point an event acts through: the pinch midpoint
// of a hand, the origin of a tip. Pointers have none.
func InteractPoint(e *Event) (mgl32.Vec3, bool) {
	switch s := e.Source.(type) {
	case Hand:
		return s.Thumb.Add(s.Index).Mul(0.5), true
	case Tip:
		return s.Origin, true
	}
	return mgl32.Vec3{}, false
}

// ContactPoints lists every point of the event that can touch geometry.
func ContactPoints(e *Event) []mgl32.Vec3 {
	switch s := e.Source.(type) {
	case Hand:
		return []mgl32.Vec3{s.Thumb, s.Index, s.Middle, s.Ring, s.Little}
	case Tip:
		return []mgl32.Vec3{s.Origin}
	}
	return nil
}

// Azimuth is atan2(z, x) of the interact point. The result jumps by 2π where
// it crosses ±π; it is returned as is.
func Azimuth(e *Event) (float32, bool) {
	p, ok := InteractPoint(e)
	if !ok {
		return 0, false
	}
	return float32(math.Atan2(float64(p.Z()), float64(p.X()))), true
}

// MinContactDistance is the smallest distance from target to any contact
// point of events, or +Inf when there are no contact points at all.
func MinContactDistance(events []Event, target mgl32.Vec3) float32 {
	closest := float32(math.Inf(1))
	for i := range events {
		for _, p := range ContactPoints(&events[i]) {
			if d := p.Sub(target).Len(); d < closest {
				closest = d
			}
		}
	}
	return closest
}
