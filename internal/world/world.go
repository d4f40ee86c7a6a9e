package world

import (
	"turntable/internal/assets"
	"turntable/internal/engine"
)

// World owns the scene graph. Root is the single top-level spatial that
// widgets and models attach to.
type World struct {
	Scene    *engine.Scene
	Root     *engine.GameObject
	Renderer *Renderer
}

func New() *World {
	w := &World{
		Scene:    engine.NewScene("Main"),
		Root:     engine.NewGameObject("Root"),
		Renderer: NewRenderer(),
	}
	w.Scene.AddGameObject(w.Root)
	return w
}

// Initialize starts every object. Call after the window is open.
func (w *World) Initialize() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Unload frees every model loaded through the asset cache.
func (w *World) Unload() {
	assets.Unload()
}
