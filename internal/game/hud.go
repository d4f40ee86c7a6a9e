package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusDuration = 3.0

func (g *Game) DrawUI() {
	rl.DrawText("Left drag the rim to spin, scroll over the ring to turn", 10, 10, 20, rl.LightGray)
	rl.DrawText("Right drag to orbit, Ctrl+wheel to zoom, F1 field, R reset, drop a model to load it", 10, 35, 16, rl.Gray)
	rl.DrawFPS(10, 60)

	s := g.Turntable.State()
	touch := "idle"
	if g.Turntable.Touch().ActorActing() {
		touch = "dragging"
	}

	gui.Label(rl.Rectangle{X: 10, Y: 90, Width: 300, Height: 20}, fmt.Sprintf("Rotation: %.3f rad", s.Rotation))
	gui.Label(rl.Rectangle{X: 10, Y: 110, Width: 300, Height: 20}, fmt.Sprintf("Momentum: %.5f", s.AngularMomentum))
	gui.Label(rl.Rectangle{X: 10, Y: 130, Width: 300, Height: 20}, "Touch: "+touch)
	gui.Label(rl.Rectangle{X: 320, Y: 90, Width: 200, Height: 20}, fmt.Sprintf("Time: %.1f s", g.Turntable.Elapsed()))

	if gui.Button(rl.Rectangle{X: 10, Y: 160, Width: 120, Height: 28}, "Reset") {
		g.startReset()
	}
	g.ShowField = gui.CheckBox(rl.Rectangle{X: 10, Y: 200, Width: 20, Height: 20}, "Show field", g.ShowField)

	if g.statusMsg != "" && rl.GetTime()-g.statusTime < statusDuration {
		rl.DrawText(g.statusMsg, 10, int32(rl.GetScreenHeight())-30, 20, rl.Yellow)
	}
}
