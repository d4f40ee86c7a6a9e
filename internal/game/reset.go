package game

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const resetDuration = 0.6

// startReset eases the turntable back to the nearest whole turn.
func (g *Game) startReset() {
	rot := g.Turntable.State().Rotation
	turns := math.Round(float64(rot) / (2 * math.Pi))
	target := float32(turns * 2 * math.Pi)

	g.Turntable.Halt()
	g.reset = gween.New(rot, target, resetDuration, ease.OutCubic)
}

func (g *Game) updateReset(deltaTime float32) {
	if g.reset == nil {
		return
	}
	// A grab takes over from the animation
	if g.Turntable.Touch().ActorActing() {
		g.reset = nil
		return
	}

	value, finished := g.reset.Update(deltaTime)
	g.Turntable.Halt()
	g.Turntable.Rotate(value - g.Turntable.State().Rotation)
	if finished {
		g.reset = nil
	}
}
