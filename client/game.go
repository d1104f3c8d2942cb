package client

import (
	"image/color"

	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game runs one court scene per window. ebiten's update rate is pinned to the
// physics tick rate so each Update is exactly one fixed step.
type Game struct {
	scene *scenes.CourtScene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewCourtScene(NewKeyboard()),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	Render(screen, g.scene.World())
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
