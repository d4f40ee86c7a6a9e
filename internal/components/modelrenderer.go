package components

import (
	"turntable/internal/assets"
	"turntable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
}

func NewModelRendererFromFile(path string, color rl.Color) (*ModelRenderer, error) {
	model, err := assets.LoadModel(path)
	if err != nil {
		return nil, err
	}
	return &ModelRenderer{Model: model, Color: color}, nil
}

// Bounds is the model's bounding box in model space.
func (m *ModelRenderer) Bounds() rl.BoundingBox {
	return rl.GetModelBoundingBox(m.Model)
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// World matrix carries the turntable's spin down to the model
	m.Model.Transform = ToMatrix(g.WorldMatrix())
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}
