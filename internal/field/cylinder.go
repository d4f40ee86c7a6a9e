// Package field implements signed-distance capture volumes.
package field

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidShape = errors.New("invalid field shape")

const (
	maxRaySteps   = 1000
	maxRayLength  = 1000.0
	minRayMarch   = 0.001
	surfaceMargin = 0.0001
)

// Cylinder is a capped cylinder standing on the Y axis, centered at Position.
type Cylinder struct {
	Position mgl32.Vec3
	Length   float32
	Radius   float32
}

func NewCylinder(position mgl32.Vec3, length, radius float32) (*Cylinder, error) {
	if !(length >= 0) || !(radius > 0) || math.IsInf(float64(length), 0) || math.IsInf(float64(radius), 0) {
		return nil, fmt.Errorf("cylinder length %v radius %v: %w", length, radius, ErrInvalidShape)
	}
	return &Cylinder{Position: position, Length: length, Radius: radius}, nil
}

// Distance is the signed distance from p to the surface, negative inside.
func (c *Cylinder) Distance(p mgl32.Vec3) float32 {
	q := p.Sub(c.Position)
	dx := hypot(q.X(), q.Z()) - c.Radius
	dy := abs(q.Y()) - c.Length/2

	inside := min(max(dx, dy), 0)
	outside := hypot(max(dx, 0), max(dy, 0))
	return inside + outside
}

// RayMarch walks the ray and returns the smallest signed distance seen along
// it. A ray passing through the cylinder reports a negative distance.
func (c *Cylinder) RayMarch(origin, direction mgl32.Vec3) float32 {
	if direction.Len() == 0 {
		return c.Distance(origin)
	}
	direction = direction.Normalize()

	closest := float32(math.Inf(1))
	var travelled float32
	for step := 0; step < maxRaySteps && travelled < maxRayLength; step++ {
		d := c.Distance(origin.Add(direction.Mul(travelled)))
		closest = min(closest, d)
		travelled += max(abs(d), minRayMarch)
	}
	return closest
}

type RaycastHit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Raycast finds where the ray first enters the cylinder, checking the side
// wall and both caps. Rays starting inside report no hit.
func (c *Cylinder) Raycast(origin, direction mgl32.Vec3, maxDistance float32) (RaycastHit, bool) {
	if direction.Len() == 0 || c.Distance(origin) < 0 {
		return RaycastHit{}, false
	}
	direction = direction.Normalize()
	o := origin.Sub(c.Position)
	half := c.Length / 2

	best := RaycastHit{Distance: maxDistance}
	hit := false
	try := func(t float32, normal mgl32.Vec3) {
		if t < 0 || t > best.Distance {
			return
		}
		best = RaycastHit{Point: origin.Add(direction.Mul(t)), Normal: normal, Distance: t}
		hit = true
	}

	// Side wall: solve |(o + t·d).xz| = r
	a := direction.X()*direction.X() + direction.Z()*direction.Z()
	if a > 0 {
		b := 2 * (o.X()*direction.X() + o.Z()*direction.Z())
		cc := o.X()*o.X() + o.Z()*o.Z() - c.Radius*c.Radius
		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
			y := o.Y() + direction.Y()*t
			if y >= -half-surfaceMargin && y <= half+surfaceMargin {
				p := o.Add(direction.Mul(t))
				try(t, mgl32.Vec3{p.X(), 0, p.Z()}.Normalize())
			}
		}
	}

	// Caps
	if direction.Y() != 0 {
		for _, capY := range []float32{half, -half} {
			t := (capY - o.Y()) / direction.Y()
			p := o.Add(direction.Mul(t))
			if hypot(p.X(), p.Z()) <= c.Radius+surfaceMargin {
				try(t, mgl32.Vec3{0, sign(capY), 0})
			}
		}
	}

	return best, hit
}

func hypot(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
