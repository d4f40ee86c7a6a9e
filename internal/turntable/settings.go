package turntable

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"turntable/internal/drawable"
)

// Settings are fixed for a turntable's lifetime.
type Settings struct {
	LineCount     uint32
	LineThickness float32
	Height        float32
	InnerRadius   float32
	// ScrollMultiplier is radians per unit of scroll.
	ScrollMultiplier float32
}

func (s Settings) OuterRadius() float32 {
	return s.InnerRadius + s.Height
}

// GripLines builds the ramp rails: LineCount segments evenly spaced around
// the ring, each running from the inner edge at y = 0 down and out to the
// outer edge at y = -Height.
func (s Settings) GripLines() []drawable.Line {
	lines := make([]drawable.Line, 0, s.LineCount)
	outer := s.OuterRadius()
	for i := range s.LineCount {
		angle := float64(i) / float64(s.LineCount) * 2 * math.Pi
		x, y := float32(math.Sin(angle)), float32(math.Cos(angle))
		lines = append(lines, drawable.Line{
			Points: []drawable.LinePoint{
				{
					Point:     mgl32.Vec3{x * s.InnerRadius, 0, y * s.InnerRadius},
					Thickness: s.LineThickness,
					Color:     drawable.White,
				},
				{
					Point:     mgl32.Vec3{x * outer, -s.Height, y * outer},
					Thickness: s.LineThickness,
					Color:     drawable.White,
				},
			},
		})
	}
	return lines
}
