package field

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCylinder(t *testing.T) *Cylinder {
	t.Helper()
	c, err := NewCylinder(mgl32.Vec3{0, -1, 0}, 2, 1)
	require.NoError(t, err)
	return c
}

func TestNewCylinderRejectsBadShapes(t *testing.T) {
	for _, tc := range []struct {
		name           string
		length, radius float32
	}{
		{"zero radius", 1, 0},
		{"negative radius", 1, -1},
		{"negative length", -1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCylinder(mgl32.Vec3{}, tc.length, tc.radius)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestCylinderDistance(t *testing.T) {
	c := unitCylinder(t)

	assert.InDelta(t, -1, c.Distance(mgl32.Vec3{0, -1, 0}), 1e-6, "center")
	assert.InDelta(t, -0.5, c.Distance(mgl32.Vec3{0.5, -1, 0}), 1e-6)
	assert.InDelta(t, 1, c.Distance(mgl32.Vec3{2, -1, 0}), 1e-6, "beside the wall")
	assert.InDelta(t, 0.5, c.Distance(mgl32.Vec3{0, 0.5, 0}), 1e-6, "above the top cap")
	assert.InDelta(t, 0, c.Distance(mgl32.Vec3{1, 0, 0}), 1e-6, "on the rim")
	assert.InDelta(t, 1.4142135, c.Distance(mgl32.Vec3{2, 1, 0}), 1e-5, "off the rim diagonally")
}

func TestCylinderRayMarch(t *testing.T) {
	c := unitCylinder(t)

	through := c.RayMarch(mgl32.Vec3{-5, -1, 0}, mgl32.Vec3{1, 0, 0})
	assert.Less(t, through, float32(-0.5), "ray through the middle goes deep inside")
	assert.GreaterOrEqual(t, through, float32(-1))

	above := c.RayMarch(mgl32.Vec3{-5, 1, 0}, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 1, above, 0.01, "ray passing over the top")

	away := c.RayMarch(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, 1, 0})
	assert.InDelta(t, 3, away, 1e-4, "ray pointing away keeps its starting distance")
}

func TestCylinderRaycastSide(t *testing.T) {
	c := unitCylinder(t)

	hit, ok := c.Raycast(mgl32.Vec3{-5, -1, 0}, mgl32.Vec3{1, 0, 0}, 100)
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
	assert.True(t, hit.Point.ApproxEqualThreshold(mgl32.Vec3{-1, -1, 0}, 1e-5))
	assert.True(t, hit.Normal.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5))
}

func TestCylinderRaycastCap(t *testing.T) {
	c := unitCylinder(t)

	hit, ok := c.Raycast(mgl32.Vec3{0.5, 4, 0}, mgl32.Vec3{0, -1, 0}, 100)
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, hit.Normal)
}

func TestCylinderRaycastMiss(t *testing.T) {
	c := unitCylinder(t)

	_, ok := c.Raycast(mgl32.Vec3{-5, 3, 0}, mgl32.Vec3{1, 0, 0}, 100)
	assert.False(t, ok, "passes above")

	_, ok = c.Raycast(mgl32.Vec3{-5, -1, 0}, mgl32.Vec3{1, 0, 0}, 2)
	assert.False(t, ok, "beyond max distance")

	_, ok = c.Raycast(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, 100)
	assert.False(t, ok, "starts inside")
}
