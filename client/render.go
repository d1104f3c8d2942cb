package client

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/team"
	"github.com/automoto/dunkball/systems"
	"github.com/automoto/dunkball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// floor is how many pixels of the screen sit below world y = 0.
const floor = 150

// toScreen maps y-up world pixels to the screen, with x = 0 centred.
func toScreen(p dmath.Vec2) (float32, float32) {
	return float32(p.X + float64(cfg.C.Width)/2), float32(float64(cfg.C.Height-floor) - p.Y)
}

func sideColor(side team.Side) color.Color {
	if side == team.Left {
		return cfg.Blue
	}
	return cfg.Red
}

// Render draws the court from the scene's world.
func Render(screen *ebiten.Image, w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	sp := components.Physics.Get(entry)

	drawBox(screen, cfg.Court.Ground, cfg.DarkGray)
	for _, wall := range cfg.Court.Walls {
		drawBox(screen, wall, color.RGBA{R: 40, G: 40, B: 40, A: 255})
	}

	tags.Hoop.Each(w, func(e *donburi.Entry) {
		drawHoop(screen, components.Hoop.Get(e).Position, components.Team.Get(e).Side)
	})

	components.Player.Each(w, func(e *donburi.Entry) {
		drawPlayer(screen, sp, e)
	})

	tags.Ball.Each(w, func(e *donburi.Entry) {
		x, y := toScreen(sp.World.Position(components.Body.Get(e).ID))
		vector.DrawFilledCircle(screen, x, y, float32(cfg.Ball.Radius), cfg.Orange, true)

		poss := components.Possession.Get(e)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ball: %s  shots: %d", poss.State, poss.Shots), 8, 8)
	})
}

func drawBox(screen *ebiten.Image, b cfg.BoxConfig, c color.Color) {
	x, y := toScreen(dmath.Vec2{X: b.X - b.HalfWidth, Y: b.Y + b.HalfHeight})
	vector.FillRect(screen, x, y, float32(2*b.HalfWidth), float32(2*b.HalfHeight), c, false)
}

func drawHoop(screen *ebiten.Image, at dmath.Vec2, side team.Side) {
	drawBox(screen, cfg.BoxConfig{
		X:          at.X + side.Sign()*cfg.Court.BackboardOffsetX,
		Y:          at.Y + cfg.Court.BackboardOffsetY,
		HalfWidth:  cfg.Court.BackboardHalfWidth,
		HalfHeight: cfg.Court.BackboardHalfHeight,
	}, cfg.White)

	x0, y0 := toScreen(dmath.Vec2{X: at.X - 30, Y: at.Y})
	x1, y1 := toScreen(dmath.Vec2{X: at.X + 30, Y: at.Y})
	vector.StrokeLine(screen, x0, y0, x1, y1, 4, sideColor(side), true)
}

// drawPlayer draws the body as a thick line along its long axis and the arm
// from shoulder to hand.
func drawPlayer(screen *ebiten.Image, sp *components.PhysicsData, e *donburi.Entry) {
	body := components.Body.Get(e).ID
	side := components.Team.Get(e).Side
	pos := sp.World.Position(body)
	angle := sp.World.Angle(body)

	sin, cos := math.Sincos(angle)
	half := cfg.Player.HalfHeight - cfg.Player.HalfWidth
	head := dmath.Vec2{X: pos.X - sin*half, Y: pos.Y + cos*half}
	feet := dmath.Vec2{X: pos.X + sin*half, Y: pos.Y - cos*half}

	hx, hy := toScreen(head)
	fx, fy := toScreen(feet)
	vector.StrokeLine(screen, hx, hy, fx, fy, float32(2*cfg.Player.HalfWidth), sideColor(side), true)
	vector.DrawFilledCircle(screen, hx, hy, float32(cfg.Player.HalfWidth), sideColor(side), true)
	vector.DrawFilledCircle(screen, fx, fy, float32(cfg.Player.HalfWidth), sideColor(side), true)

	shoulder := cfg.Player.Rig().Shoulder(pos, angle, side)
	hand := systems.HandPosition(sp, e)

	sx, sy := toScreen(shoulder)
	ax, ay := toScreen(hand)
	vector.StrokeLine(screen, sx, sy, ax, ay, 14, cfg.White, true)

	if cfg.Debug.DrawHands {
		vector.StrokeCircle(screen, ax, ay, float32(cfg.Player.HandRadius), 1, cfg.Yellow, true)
	}
}
