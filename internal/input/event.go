// Package input reduces routed pointer, tip and hand input to the points and
// angles the turntable acts on.
package input

import "github.com/go-gl/mathgl/mgl32"

// ScrollContinuous is the datamap key holding a continuous 2D scroll vector.
const ScrollContinuous = "scroll_continuous"

// Source is one of Pointer, Tip or Hand.
type Source interface {
	isSource()
}

// Pointer is a ray. Pointers carry scroll data but never touch anything.
type Pointer struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Tip is a single-point controller such as a stylus or a mouse-driven cursor.
type Tip struct {
	Origin mgl32.Vec3
}

// Hand holds the five fingertip positions of a tracked hand.
type Hand struct {
	Thumb  mgl32.Vec3
	Index  mgl32.Vec3
	Middle mgl32.Vec3
	Ring   mgl32.Vec3
	Little mgl32.Vec3
}

func (Pointer) isSource() {}
func (Tip) isSource()     {}
func (Hand) isSource()    {}

// Datamap is the per-event payload of named values.
type Datamap map[string]any

// Vec2 returns the named value as a 2D vector. Values stored as mgl32.Vec2,
// [2]float32 or a two-element []float32 are accepted.
func (d Datamap) Vec2(name string) (mgl32.Vec2, bool) {
	switch v := d[name].(type) {
	case mgl32.Vec2:
		return v, true
	case [2]float32:
		return mgl32.Vec2(v), true
	case []float32:
		if len(v) == 2 {
			return mgl32.Vec2{v[0], v[1]}, true
		}
	}
	return mgl32.Vec2{}, false
}

// Scroll returns the continuous scroll vector, zero when absent.
func (d Datamap) Scroll() mgl32.Vec2 {
	v, _ := d.Vec2(ScrollContinuous)
	return v
}

// Event is one routed input for one frame. ID identifies the physical source
// across frames. Distance is the signed distance to the capture field,
// negative inside. Events are read-only once delivered.
type Event struct {
	ID       uint64
	Source   Source
	Distance float32
	Datamap  Datamap
}
