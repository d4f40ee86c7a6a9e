package game

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"turntable/internal/components"
	"turntable/internal/input"
)

// Stable IDs for the two inputs the mouse provides.
const (
	pointerID uint64 = iota + 1
	tipID
)

const maxRayDistance = 100

// routeInput turns the mouse into a pointer that always carries the wheel as
// scroll, plus a tip while the left button is held over the rim.
func (g *Game) routeInput() {
	root := g.Turntable.Root()
	ray := g.Camera.MouseRay()
	origin := root.ToLocal(components.FromVector3(ray.Position))
	direction := root.ToLocalDirection(components.FromVector3(ray.Direction)).Normalize()

	events := []input.Event{{
		ID:      pointerID,
		Source:  input.Pointer{Origin: origin, Direction: direction},
		Datamap: input.Datamap{input.ScrollContinuous: g.scroll()},
	}}
	if p, ok := g.tip(origin, direction); ok {
		events = append(events, input.Event{ID: tipID, Source: input.Tip{Origin: p}})
	}
	g.Turntable.Handler().Route(events)
}

func (g *Game) scroll() mgl32.Vec2 {
	if g.Camera.Zooming() {
		return mgl32.Vec2{}
	}
	wheel := rl.GetMouseWheelMoveV()
	return mgl32.Vec2{wheel.X, wheel.Y}
}

// tip places the cursor just inside the field where the mouse ray enters it.
// Once a drag is under way it follows the cursor across the field's middle
// plane so the grab survives leaving the rim.
func (g *Game) tip(origin, direction mgl32.Vec3) (mgl32.Vec3, bool) {
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		return mgl32.Vec3{}, false
	}
	f := g.Turntable.Field()
	if hit, ok := f.Raycast(origin, direction, maxRayDistance); ok {
		return hit.Point.Add(direction.Mul(f.Length * 0.25)), true
	}
	if !g.Turntable.Touch().ActorActing() {
		return mgl32.Vec3{}, false
	}
	return planeHit(origin, direction, f.Position.Y())
}

func planeHit(origin, direction mgl32.Vec3, y float32) (mgl32.Vec3, bool) {
	if direction.Y() == 0 {
		return mgl32.Vec3{}, false
	}
	t := (y - origin.Y()) / direction.Y()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(direction.Mul(t)), true
}
