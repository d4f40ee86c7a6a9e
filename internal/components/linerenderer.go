package components

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"turntable/internal/drawable"
	"turntable/internal/engine"
)

// LineRenderer draws the drawable.Lines component on the same object.
// Segments thicker than Hairline become thin cylinders.
type LineRenderer struct {
	engine.BaseComponent
	Hairline float32
	Sides    int32
}

func NewLineRenderer() *LineRenderer {
	return &LineRenderer{Hairline: 0.0005, Sides: 4}
}

func (r *LineRenderer) Draw() {
	g := r.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	lines := engine.GetComponent[*drawable.Lines](g)
	if lines == nil {
		return
	}

	world := g.WorldMatrix()
	for _, line := range lines.Lines() {
		n := len(line.Points)
		segments := n - 1
		if line.Cyclic && n > 2 {
			segments = n
		}
		for i := 0; i < segments; i++ {
			a, b := line.Points[i], line.Points[(i+1)%n]
			r.drawSegment(world, a, b)
		}
	}
}

func (r *LineRenderer) drawSegment(world mgl32.Mat4, a, b drawable.LinePoint) {
	start := ToVector3(mgl32.TransformCoordinate(a.Point, world))
	end := ToVector3(mgl32.TransformCoordinate(b.Point, world))

	// raylib takes one color per cylinder; blend the endpoints
	c := drawable.Color{
		R: (a.Color.R + b.Color.R) / 2,
		G: (a.Color.G + b.Color.G) / 2,
		B: (a.Color.B + b.Color.B) / 2,
		A: (a.Color.A + b.Color.A) / 2,
	}
	if a.Thickness <= r.Hairline && b.Thickness <= r.Hairline {
		rl.DrawLine3D(start, end, ToColor(c))
		return
	}
	rl.DrawCylinderEx(start, end, a.Thickness/2, b.Thickness/2, r.Sides, ToColor(c))
}
