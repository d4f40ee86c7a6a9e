package components

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"turntable/internal/drawable"
)

// ToMatrix converts a column-major mgl32 matrix to raylib's layout, which
// stores columns in M0-M3, M4-M7 and so on.
func ToMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func ToVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func FromVector3(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func ToColor(c drawable.Color) rl.Color {
	return rl.ColorFromNormalized(rl.Vector4{X: c.R, Y: c.G, Z: c.B, W: c.A})
}
