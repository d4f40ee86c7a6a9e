package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and pitch are in degrees.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         90.0,
		Pitch:       20.0,
		LookSpeed:   0.3,
		ZoomSpeed:   0.1,
		MinDistance: distance * 0.2,
		MaxDistance: distance * 5,
	}
}

// Update orbits while the right mouse button is held and zooms on the wheel
// while Ctrl is held; the plain wheel is left for turntable scrolling.
func (c *OrbitCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		c.Yaw += mouseDelta.X * c.LookSpeed
		c.Pitch += mouseDelta.Y * c.LookSpeed
	}

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	if c.Zooming() {
		wheel := rl.GetMouseWheelMove()
		c.Distance *= 1 - wheel*c.ZoomSpeed
		c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
	}
}

// Zooming reports whether wheel input belongs to the camera this frame.
func (c *OrbitCamera) Zooming() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	return rl.Vector3{
		X: c.Target.X + c.Distance*float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: c.Target.Y + c.Distance*float32(math.Sin(pitchRad)),
		Z: c.Target.Z + c.Distance*float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// MouseRay is the world-space ray under the cursor.
func (c *OrbitCamera) MouseRay() rl.Ray {
	return rl.GetScreenToWorldRay(rl.GetMousePosition(), c.GetRaylibCamera())
}
