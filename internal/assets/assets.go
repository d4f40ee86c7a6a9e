package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrEmptyModel = errors.New("model has no meshes")

var manager *Manager

type Manager struct {
	models map[string]rl.Model
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadModel loads and caches a model file. Requires an open window.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model: %w", err)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return rl.Model{}, fmt.Errorf("load model %s: %w", path, ErrEmptyModel)
	}
	manager.models[path] = model
	return model, nil
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}
	manager.models = make(map[string]rl.Model)
}

// Fit returns the uniform scale and offset that seat a model with the given
// bounds on a turntable of radius: the largest dimension spans the diameter
// without ever enlarging the model, and the model sits on the surface.
func Fit(bounds rl.BoundingBox, radius float32) (scale float32, offset mgl32.Vec3) {
	size := mgl32.Vec3{
		bounds.Max.X - bounds.Min.X,
		bounds.Max.Y - bounds.Min.Y,
		bounds.Max.Z - bounds.Min.Z,
	}
	center := mgl32.Vec3{
		(bounds.Max.X + bounds.Min.X) / 2,
		(bounds.Max.Y + bounds.Min.Y) / 2,
		(bounds.Max.Z + bounds.Min.Z) / 2,
	}

	maxDim := max(size.X(), size.Y(), size.Z())
	scale = 1
	if maxDim > 0 {
		scale = min(radius*2/maxDim, 1)
	}

	offset = mgl32.Vec3{0, size.Y() * scale / 2, 0}
	offset = offset.Sub(center.Mul(scale * 0.5))
	return scale, offset
}
