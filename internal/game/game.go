package game

import (
	"fmt"
	"log"

	"turntable/internal/camera"
	"turntable/internal/components"
	"turntable/internal/config"
	"turntable/internal/engine"
	"turntable/internal/input"
	"turntable/internal/turntable"
	"turntable/internal/world"

	"github.com/tanema/gween"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	ModelPath string
	World     *world.World
	Camera    *camera.OrbitCamera
	Turntable *turntable.Turntable
	ShowField bool

	model *engine.GameObject
	reset *gween.Tween

	statusMsg  string
	statusTime float64
}

func New(cfg config.Config, modelPath string) *Game {
	radius := cfg.Turntable.Radius
	return &Game{
		Config:    cfg,
		ModelPath: modelPath,
		World:     world.New(),
		Camera:    camera.New(rl.Vector3{X: 0, Y: radius * 0.5, Z: 0}, radius*5),
	}
}

func (g *Game) Run() error {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)

	tt, err := turntable.Create(g.World.Root, engine.IdentityTransform(), g.Config.Settings())
	if err != nil {
		return err
	}
	tt.ContentParent().AddComponent(components.NewLineRenderer())
	tt.Touch().Started.AddListener(func(e input.Event) {
		log.Printf("Turntable: grabbed by input %d", e.ID)
	})
	tt.Touch().Stopped.AddListener(func(e input.Event) {
		log.Printf("Turntable: released by input %d", e.ID)
	})
	g.Turntable = tt

	// Model needs the GL context for loading
	if err := g.loadModel(g.ModelPath); err != nil {
		return err
	}

	g.World.Initialize()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.reportState()
	return nil
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	g.Camera.Update(deltaTime)
	g.handleFileDrop()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.ShowField = !g.ShowField
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.startReset()
	}

	g.routeInput()
	g.updateReset(deltaTime)

	// Scene update ticks the turntable against the routed input
	g.World.Update(deltaTime)
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	g.World.Renderer.Draw(cam, g.World.Scene)
	if g.ShowField {
		g.World.Renderer.DrawField(cam, g.Turntable.Root(), g.Turntable.Field())
	}
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) setStatus(format string, args ...any) {
	g.statusMsg = fmt.Sprintf(format, args...)
	g.statusTime = rl.GetTime()
}

// reportState logs where the widget ended up. Rotation is deliberately not
// restored across runs.
func (g *Game) reportState() {
	root := g.Turntable.Root()
	s := g.Turntable.State()
	log.Printf("Turntable: closing at root position %v, rotation %.3f rad", root.WorldPosition(), s.Rotation)
}
