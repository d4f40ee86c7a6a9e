package game

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"turntable/internal/assets"
	"turntable/internal/components"
	"turntable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var modelExtensions = map[string]bool{
	".gltf": true,
	".glb":  true,
	".obj":  true,
	".iqm":  true,
	".vox":  true,
	".m3d":  true,
}

// handleFileDrop swaps the displayed model for a file dropped on the window
func (g *Game) handleFileDrop() {
	if !rl.IsFileDropped() {
		return
	}

	files := rl.LoadDroppedFiles()
	defer rl.UnloadDroppedFiles()

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file))
		if !modelExtensions[ext] {
			g.setStatus("Unsupported file type: %s", ext)
			continue
		}
		if err := g.loadModel(file); err != nil {
			g.setStatus("Failed to load %s: %v", filepath.Base(file), err)
			continue
		}
		g.setStatus("Loaded %s", filepath.Base(file))
		return
	}
}

// loadModel scales the model to fit the turntable, rests it on the surface
// and parents it to the content so it spins with the table.
func (g *Game) loadModel(path string) error {
	renderer, err := components.NewModelRendererFromFile(path, rl.White)
	if err != nil {
		return err
	}

	scale, offset := assets.Fit(renderer.Bounds(), g.Config.Turntable.Radius)

	obj := engine.NewGameObject(filepath.Base(path))
	obj.AddComponent(renderer)
	obj.SetLocalTransform(engine.TranslationScale(offset, scale))
	if err := obj.SetSpatialParent(g.Turntable.ContentParent()); err != nil {
		return fmt.Errorf("attach model: %w", err)
	}
	obj.Start()

	if g.model != nil {
		g.model.Detach()
	}
	g.model = obj
	g.ModelPath = path

	log.Printf("Loaded model %s at scale %.4f", path, scale)
	return nil
}
