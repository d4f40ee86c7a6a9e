package world

import (
	"turntable/internal/components"
	"turntable/internal/engine"
	"turntable/internal/field"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	Background rl.Color
	GridSlices int32
	GridSpace  float32
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.NewColor(20, 20, 30, 255),
		GridSlices: 20,
		GridSpace:  0.05,
	}
}

// Draw renders the scene from camera. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, scene *engine.Scene) {
	rl.ClearBackground(r.Background)

	rl.BeginMode3D(camera)
	rl.DrawGrid(r.GridSlices, r.GridSpace)
	r.drawScene(scene)
	rl.EndMode3D()
}

func (r *Renderer) drawScene(scene *engine.Scene) {
	scene.Each(func(g *engine.GameObject) {
		if !g.Active {
			return
		}
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawer); ok {
				d.Draw()
			}
		}
	})
}

// DrawField outlines a capture field placed under owner, for debugging.
func (r *Renderer) DrawField(camera rl.Camera3D, owner *engine.GameObject, f *field.Cylinder) {
	world := owner.WorldMatrix()
	center := f.Position
	half := f.Length / 2
	bottom := center.Sub(engine.Up.Mul(half))
	top := center.Add(engine.Up.Mul(half))

	rl.BeginMode3D(camera)
	rl.DrawCylinderWiresEx(
		components.ToVector3(mgl32.TransformCoordinate(bottom, world)),
		components.ToVector3(mgl32.TransformCoordinate(top, world)),
		f.Radius, f.Radius, 32, rl.SkyBlue,
	)
	rl.EndMode3D()
}
