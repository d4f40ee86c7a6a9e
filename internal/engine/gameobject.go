package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoParent = errors.New("no parent spatial")

// Up is the vertical axis every turntable spins around.
var Up = mgl32.Vec3{0, 1, 0}

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func TranslationScale(position mgl32.Vec3, scale float32) Transform {
	t := IdentityTransform()
	t.Position = position
	t.Scale = mgl32.Vec3{scale, scale, scale}
	return t
}

// Matrix composes scale, then rotation, then translation.
func (t Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  IdentityTransform(),
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// CreateChild makes a new spatial under parent with the given local transform.
func CreateChild(parent *GameObject, name string, transform Transform) (*GameObject, error) {
	if parent == nil {
		return nil, fmt.Errorf("create %q: %w", name, ErrNoParent)
	}
	g := NewGameObject(name)
	g.Transform = transform
	parent.AddChild(g)
	return g, nil
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil {
		g.Scene.register(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			if child.Scene != nil {
				child.Scene.unregister(child)
			}
			return
		}
	}
}

// Detach removes the object from its parent, if any.
func (g *GameObject) Detach() {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
}

// SetSpatialParent reparents g under parent, keeping its local transform.
func (g *GameObject) SetSpatialParent(parent *GameObject) error {
	if parent == nil {
		return fmt.Errorf("reparent %q: %w", g.Name, ErrNoParent)
	}
	parent.AddChild(g)
	return nil
}

func (g *GameObject) SetLocalTransform(t Transform) {
	g.Transform = t
}

func (g *GameObject) SetLocalRotation(q mgl32.Quat) {
	g.Transform.Rotation = q
}

func (g *GameObject) WorldMatrix() mgl32.Mat4 {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return g.Parent.WorldMatrix().Mul4(local)
}

func (g *GameObject) WorldPosition() mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{}, g.WorldMatrix())
}

// ToLocal converts a world-space point into this object's local space.
func (g *GameObject) ToLocal(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, g.WorldMatrix().Inv())
}

// ToLocalDirection converts a world-space direction into local space, unnormalized.
func (g *GameObject) ToLocalDirection(d mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformNormal(d, g.WorldMatrix().Inv())
}

// Walk visits g and all descendants depth-first.
func (g *GameObject) Walk(fn func(*GameObject)) {
	fn(g)
	for _, child := range g.Children {
		child.Walk(fn)
	}
}
