package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}

	if obj.Transform.Rotation != mgl32.QuatIdent() {
		t.Errorf("Expected identity rotation, got %v", obj.Transform.Rotation)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Errorf("Expected child in parent's Children, got %v", parent.Children)
	}
}

func TestGameObjectReparent(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	child := NewGameObject("Child")

	a.AddChild(child)
	if err := child.SetSpatialParent(b); err != nil {
		t.Fatalf("SetSpatialParent failed: %v", err)
	}

	if len(a.Children) != 0 {
		t.Errorf("Old parent should have no children, got %d", len(a.Children))
	}
	if child.Parent != b {
		t.Error("Child should be under new parent")
	}

	if err := child.SetSpatialParent(nil); !errors.Is(err, ErrNoParent) {
		t.Errorf("Expected ErrNoParent, got %v", err)
	}
}

func TestCreateChild(t *testing.T) {
	parent := NewGameObject("Parent")

	child, err := CreateChild(parent, "Child", TranslationScale(mgl32.Vec3{0, 1, 0}, 2))
	if err != nil {
		t.Fatalf("CreateChild failed: %v", err)
	}
	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if _, err := CreateChild(nil, "Orphan", IdentityTransform()); !errors.Is(err, ErrNoParent) {
		t.Errorf("Expected ErrNoParent, got %v", err)
	}
}

func TestGameObjectDetach(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	child.Detach()

	if child.Parent != nil || len(parent.Children) != 0 {
		t.Error("Detach should remove child from parent")
	}

	// Detaching a root is a no-op
	parent.Detach()
}

func TestGameObjectWorldPosition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = mgl32.Vec3{1, 0, 0}
	parent.Transform.Rotation = mgl32.QuatRotate(math.Pi/2, Up)

	child := NewGameObject("Child")
	child.Transform.Position = mgl32.Vec3{1, 0, 0}
	parent.AddChild(child)

	// +X rotated a quarter turn about +Y lands on -Z
	got := child.WorldPosition()
	want := mgl32.Vec3{1, 0, -1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected world position %v, got %v", want, got)
	}

	local := child.ToLocal(want)
	if local.Len() > 1e-5 {
		t.Errorf("Expected origin in child space, got %v", local)
	}
}

func TestGameObjectSetLocalRotation(t *testing.T) {
	obj := NewGameObject("Spinner")
	q := mgl32.QuatRotate(0.5, Up)

	obj.SetLocalRotation(q)

	if obj.Transform.Rotation != q {
		t.Errorf("Expected rotation %v, got %v", q, obj.Transform.Rotation)
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
	lastDt  float32
}

func (c *countingComponent) Start() { c.starts++ }

func (c *countingComponent) Update(deltaTime float32) {
	c.updates++
	c.lastDt = deltaTime
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}

	obj.AddComponent(comp)

	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}

	found := GetComponent[*countingComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*BaseComponent](obj) != nil {
		t.Error("GetComponent should return nil for missing type")
	}
}

func TestGameObjectUpdateReachesChildren(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	comp := &countingComponent{}
	child.AddComponent(comp)

	parent.Start()
	parent.Update(0.016)

	if comp.starts != 1 {
		t.Errorf("Expected 1 start, got %d", comp.starts)
	}
	if comp.updates != 1 || comp.lastDt != 0.016 {
		t.Errorf("Expected one update with dt 0.016, got %d updates dt %v", comp.updates, comp.lastDt)
	}

	parent.Active = false
	parent.Update(0.016)
	if comp.updates != 1 {
		t.Error("Inactive parent should not update children")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start once, got %d", comp.starts)
	}

	// Components added after start are started immediately
	late := &countingComponent{}
	obj.AddComponent(late)
	if late.starts != 1 {
		t.Errorf("Expected late component to start, got %d", late.starts)
	}
}
