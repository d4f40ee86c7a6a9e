// Package turntable implements a rotating platform driven by scroll input
// and by dragging its rim, with inertial coasting and proximity-lit grips.
package turntable

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"turntable/internal/action"
	"turntable/internal/drawable"
	"turntable/internal/engine"
	"turntable/internal/field"
	"turntable/internal/input"
)

var ErrCreationFailed = errors.New("turntable creation failed")

const (
	// momentumDecay applies once per frame, independent of frame time.
	momentumDecay = 0.98
	// glowRange is the contact distance beyond which a grip vertex is fully lit.
	glowRange = 0.05
)

type FrameInfo struct {
	Delta   float32
	Elapsed float32
}

// State is a read-only snapshot of the rotation engine.
type State struct {
	Rotation        float32
	AngularMomentum float32
	// PrevDragAngle is the azimuth of the drag point last frame, nil unless
	// a drag is in progress.
	PrevDragAngle *float32
}

type Turntable struct {
	root          *engine.GameObject
	contentParent *engine.GameObject
	settings      Settings

	gripLines []drawable.Line
	grip      *drawable.Lines
	field     *field.Cylinder
	handler   *input.Handler

	pointerHover *action.Hover[Settings]
	always       *action.Hover[Settings]
	touch        *action.Capture[Settings]

	elapsed   float32
	rotation  float32
	momentum  float32
	prevAngle float32
	dragging  bool
}

// Create builds the turntable under parent: a root spatial, a content parent
// that rotates, the cylinder capture field, an input handler bound to it and
// the grip lines. Nothing is left attached to parent on failure.
func Create(parent *engine.GameObject, transform engine.Transform, settings Settings) (*Turntable, error) {
	root, err := engine.CreateChild(parent, "Turntable", transform)
	if err != nil {
		return nil, fmt.Errorf("%w: root: %w", ErrCreationFailed, err)
	}
	t, err := build(root, settings)
	if err != nil {
		root.Detach()
		return nil, err
	}
	return t, nil
}

func build(root *engine.GameObject, settings Settings) (*Turntable, error) {
	contentParent, err := engine.CreateChild(root, "ContentParent", engine.IdentityTransform())
	if err != nil {
		return nil, fmt.Errorf("%w: content parent: %w", ErrCreationFailed, err)
	}
	cylinder, err := field.NewCylinder(
		mgl32.Vec3{0, -settings.Height * 0.5, 0},
		settings.Height,
		settings.OuterRadius(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: field: %w", ErrCreationFailed, err)
	}
	handler, err := input.NewHandler(cylinder)
	if err != nil {
		return nil, fmt.Errorf("%w: input handler: %w", ErrCreationFailed, err)
	}
	gripLines := settings.GripLines()
	grip, err := drawable.CreateLines(contentParent, gripLines)
	if err != nil {
		return nil, fmt.Errorf("%w: grip: %w", ErrCreationFailed, err)
	}

	t := &Turntable{
		root:          root,
		contentParent: contentParent,
		settings:      settings,
		gripLines:     gripLines,
		grip:          grip,
		field:         cylinder,
		handler:       handler,
		pointerHover:  action.NewHover(pointerHover),
		always:        action.NewHover(action.Always[Settings]),
		touch:         action.NewCapture(touchCapture, action.Always[Settings]),
	}
	root.AddComponent(&frameDriver{turntable: t})
	return t, nil
}

// Root is the spatial to place the turntable in a larger scene.
func (t *Turntable) Root() *engine.GameObject {
	return t.root
}

// ContentParent is the spatial that rotates; parent displayed objects here.
func (t *Turntable) ContentParent() *engine.GameObject {
	return t.contentParent
}

// Handler receives the frame's input, in root-local space.
func (t *Turntable) Handler() *input.Handler {
	return t.handler
}

func (t *Turntable) Field() *field.Cylinder {
	return t.field
}

func (t *Turntable) Settings() Settings {
	return t.settings
}

func (t *Turntable) Grip() *drawable.Lines {
	return t.grip
}

// Touch exposes the drag capture so hosts can subscribe to its edges.
func (t *Turntable) Touch() *action.Capture[Settings] {
	return t.touch
}

func (t *Turntable) State() State {
	s := State{Rotation: t.rotation, AngularMomentum: t.momentum}
	if t.dragging {
		angle := t.prevAngle
		s.PrevDragAngle = &angle
	}
	return s
}

// Rotate turns the content by angle radians about the vertical axis.
func (t *Turntable) Rotate(angle float32) {
	t.rotation += angle
	t.contentParent.SetLocalRotation(mgl32.QuatRotate(t.rotation, engine.Up))
}

// Halt drops any coasting momentum.
func (t *Turntable) Halt() {
	t.momentum = 0
}

// Elapsed is the host clock as of the last update.
func (t *Turntable) Elapsed() float32 {
	return t.elapsed
}

// Update runs one frame against the handler's current snapshot.
func (t *Turntable) Update(info FrameInfo) {
	t.elapsed = info.Elapsed
	events := t.handler.Events()
	t.pointerHover.Update(events, t.settings)
	t.always.Update(events, t.settings)
	t.touch.Update(events, t.settings)

	t.momentum *= momentumDecay
	t.Rotate(-t.scroll() * t.settings.ScrollMultiplier)

	if actor, ok := t.touch.Actor(); ok {
		if angle, ok := input.Azimuth(actor); ok {
			if t.dragging {
				delta := t.prevAngle - angle
				t.Rotate(delta)
				t.momentum = delta * info.Delta
			}
			t.prevAngle, t.dragging = angle, true
		}
	}
	if t.touch.ActorStopped() {
		t.dragging = false
	}
	if !t.touch.ActorActing() && info.Delta > 0 {
		t.Rotate(t.momentum / info.Delta)
	}

	t.updateGrip()
}

func (t *Turntable) scroll() float32 {
	var total float32
	for _, e := range t.pointerHover.Acting() {
		s := e.Datamap.Scroll()
		total += s.X() + s.Y()
	}
	return total
}

// frameDriver lets the scene graph tick the turntable.
type frameDriver struct {
	engine.BaseComponent
	turntable *Turntable
	elapsed   float32
}

func (d *frameDriver) Update(deltaTime float32) {
	d.elapsed += deltaTime
	d.turntable.Update(FrameInfo{Delta: deltaTime, Elapsed: d.elapsed})
}
