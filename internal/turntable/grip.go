package turntable

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"turntable/internal/drawable"
	"turntable/internal/engine"
	"turntable/internal/input"
)

// updateGrip lights each grip vertex by how far it is from the nearest
// contact point of any input, then pushes the whole line list.
func (t *Turntable) updateGrip() {
	rotation := mgl32.QuatRotate(t.rotation, engine.Up)
	events := t.always.Acting()
	for i := range t.gripLines {
		points := t.gripLines[i].Points
		for j := range points {
			d := input.MinContactDistance(events, rotation.Rotate(points[j].Point))
			points[j].Color = drawable.Gray(glowIntensity(d))
		}
	}
	if err := t.grip.SetLines(t.gripLines); err != nil {
		log.Printf("Turntable: skipped grip update: %v", err)
	}
}

// glowIntensity maps distance 0.05 to 1 and 0 to 0 linearly, then clamps.
func glowIntensity(distance float32) float32 {
	return mgl32.Clamp(mapRange(distance, glowRange, 0, 1, 0), 0, 1)
}

func mapRange(v, fromStart, fromEnd, toStart, toEnd float32) float32 {
	return (v-fromStart)*(toEnd-toStart)/(fromEnd-fromStart) + toStart
}
