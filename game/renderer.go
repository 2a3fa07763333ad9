package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chargeracer/merge"
	"chargeracer/scene"
	"chargeracer/vehicle"
)

// Camera represents the viewport into the physics world
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Zoom   float64
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a new camera
func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: 1, Width: width, Height: height}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + c.Width/2
	sy := (wy-c.Y)*c.Zoom + c.Height/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.Width/2)/c.Zoom + c.X
	wy := (sy-c.Height/2)/c.Zoom + c.Y
	return wx, wy
}

// Follow moves the camera a fraction of the way to (x, y)
func (c *Camera) Follow(x, y, smoothing float64) {
	c.X += (x - c.X) * smoothing
	c.Y += (y - c.Y) * smoothing
}

var (
	skyColor       = color.RGBA{0xD3, 0xE8, 0xEE, 0xFF}
	boardColor     = color.RGBA{0xEE, 0xF5, 0xF8, 0xFF}
	separatorColor = color.RGBA{0x2C, 0x5F, 0x8D, 0xFF}
	groundColor    = color.RGBA{0x5B, 0x8C, 0x3A, 0xFF}
	chassisColor   = color.RGBA{0xE0, 0x4F, 0x3A, 0xFF}
	wheelColor     = color.RGBA{0x22, 0x22, 0x22, 0xFF}
	boxColor       = color.RGBA{0x8B, 0x45, 0x13, 0xFF}
	slotColor      = color.RGBA{0x6B, 0x9B, 0xD1, 0xFF}
	cellColor      = color.RGBA{0xD6, 0xE4, 0xEC, 0xFF}
	homeColor      = color.RGBA{0xB8, 0xD4, 0xF0, 0xFF}
	textColor      = color.RGBA{0x1E, 0x2A, 0x38, 0xFF}
	chargeColor    = color.RGBA{0x3C, 0xC8, 0x5A, 0xFF}
	buttonColor    = color.RGBA{0x2C, 0x5F, 0x8D, 0xFF}
	upgradeColor   = color.RGBA{0xF2, 0xA5, 0x1A, 0xFF}
	debugColor     = color.RGBA{0xFF, 0x00, 0xFF, 0xFF}
)

// levelColors cycle by battery level
var levelColors = []color.RGBA{
	{0x9E, 0x9E, 0x9E, 0xFF},
	{0x4C, 0xAF, 0x50, 0xFF},
	{0x21, 0x96, 0xF3, 0xFF},
	{0x9C, 0x27, 0xB0, 0xFF},
	{0xFF, 0x98, 0x00, 0xFF},
	{0xF4, 0x43, 0x36, 0xFF},
	{0x00, 0xBC, 0xD4, 0xFF},
	{0xFF, 0xEB, 0x3B, 0xFF},
}

func levelColor(level int) color.RGBA {
	return levelColors[(level-1)%len(levelColors)]
}

// Renderer draws the scene
type Renderer struct {
	camera *Camera
	dust   *DustSystem
	face   *text.GoXFace
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera, dust *DustSystem) *Renderer {
	return &Renderer{
		camera: camera,
		dust:   dust,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws the vehicle section, then the board and HUD on top
func (r *Renderer) Render(screen *ebiten.Image, s *scene.Scene, fps float64) {
	cfg := s.Config()
	w, h := float32(cfg.ScreenWidth), float32(cfg.ScreenHeight)

	vector.DrawFilledRect(screen, 0, 0, w, h/2, skyColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, boardColor, false)

	view := screen.SubImage(image.Rect(0, 0, cfg.ScreenWidth, cfg.ScreenHeight/2)).(*ebiten.Image)
	r.renderWorld(view, s)
	vector.StrokeLine(screen, 0, h/2, w, h/2, 4, separatorColor, true)

	r.renderChargeBar(screen, s)
	r.renderSlots(screen, s)
	r.renderGrid(screen, s)
	r.renderTokens(screen, s)
	r.renderFlashes(screen, s)
	r.renderButtons(screen, s)
	r.renderToasts(screen, s)

	if !s.Board.Started() {
		r.drawText(screen, "Drag a battery or buy one to start", float64(w)/2, float64(h)*0.5+24, 2, textColor)
	}

	debug := GetDebugState()
	if debug.ShowAxles {
		r.renderAxles(screen, s)
	}
	if debug.ShowStats {
		stats := fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d  t=%v", ebiten.ActualTPS(), fps, s.Ticks(), s.Clock.Now().Truncate(1e8))
		r.drawTextLeft(screen, stats, 8, float64(h)-24, 1.5, debugColor)
	}
}

func (r *Renderer) renderWorld(dst *ebiten.Image, s *scene.Scene) {
	for _, seg := range s.World.Ground() {
		x0, y0 := r.camera.WorldToScreen(seg.A.X, seg.A.Y)
		x1, y1 := r.camera.WorldToScreen(seg.B.X, seg.B.Y)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 6, groundColor, true)
	}

	if box := s.World.Box(); box != nil {
		p := box.Params()
		r.drawBody(dst, box.Position(), box.Angle(), p.Width, p.Height, boxColor)
	}

	if r.dust != nil {
		r.dust.Draw(dst, r.camera)
	}

	poses := s.Vehicle.Poses()
	vc := s.Vehicle.Config()
	r.drawWheel(dst, poses.Rear, vc.WheelRadius)
	r.drawWheel(dst, poses.Front, vc.WheelRadius)
	r.drawBody(dst, poses.Chassis.Position, poses.Chassis.Angle, vc.ChassisWidth, vc.ChassisHeight, chassisColor)
}

// drawBody fills a rotated rectangle as one butt-capped stroke along its
// long axis
func (r *Renderer) drawBody(dst *ebiten.Image, at vehicle.Vec, angle, width, height float64, clr color.Color) {
	half := vehicle.Vec{X: width / 2}.Rotate(angle)
	x0, y0 := r.camera.WorldToScreen(at.X-half.X, at.Y-half.Y)
	x1, y1 := r.camera.WorldToScreen(at.X+half.X, at.Y+half.Y)
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(height*r.camera.Zoom), clr, true)
}

func (r *Renderer) drawWheel(dst *ebiten.Image, pose vehicle.Pose, radius float64) {
	cx, cy := r.camera.WorldToScreen(pose.Position.X, pose.Position.Y)
	rad := radius * r.camera.Zoom
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(rad), wheelColor, true)

	// spoke to show rotation
	ex := cx + math.Cos(pose.Angle)*rad*0.8
	ey := cy + math.Sin(pose.Angle)*rad*0.8
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(ex), float32(ey), 2, color.White, true)
}

func (r *Renderer) renderAxles(dst *ebiten.Image, s *scene.Scene) {
	for _, axle := range s.Vehicle.Axles() {
		ax, ay := r.camera.WorldToScreen(axle[0].X, axle[0].Y)
		bx, by := r.camera.WorldToScreen(axle[1].X, axle[1].Y)
		vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), 2, debugColor, true)
		vector.StrokeCircle(dst, float32(ax), float32(ay), 4, 1, debugColor, true)
	}
	c := s.Vehicle.Poses().Chassis
	r.drawTextLeft(dst, fmt.Sprintf("w=%.2f rad/s  x=%.0f", s.Vehicle.WheelSpeed(), c.Position.X), 8, 60, 1.5, debugColor)
}

func (r *Renderer) renderChargeBar(dst *ebiten.Image, s *scene.Scene) {
	bar := s.Config().HUD.ChargeBar
	m := s.Station.Meter()

	fill := chargeColor
	if p := s.Effects.Pulse; p > 0 {
		fill.G = uint8(math.Min(255, float64(fill.G)+55*p))
	}
	vector.DrawFilledRect(dst, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), color.RGBA{0x33, 0x33, 0x33, 0xCC}, false)
	vector.DrawFilledRect(dst, float32(bar.X), float32(bar.Y), float32(bar.W*m.Fraction()), float32(bar.H), fill, false)
	vector.StrokeRect(dst, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), 2, separatorColor, false)

	label := fmt.Sprintf("Charge %.1f / %.0f   +%.0f/min", m.Current, m.Max, s.Station.TotalRate())
	r.drawText(dst, label, bar.X+bar.W/2, bar.Y+bar.H+18, 1.5, textColor)
}

func (r *Renderer) renderSlots(dst *ebiten.Image, s *scene.Scene) {
	for i, slot := range s.Station.Slots() {
		b := slot.Bounds()
		vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 4, slotColor, true)
		if slot.Occupant() != nil {
			r.drawText(dst, fmt.Sprintf("+%.0f/min", s.Station.ChargeRate(i)), b.X+b.W/2, b.Y-14, 1.5, textColor)
		}
	}
}

func (r *Renderer) renderGrid(dst *ebiten.Image, s *scene.Scene) {
	drag := s.Drag()
	var home merge.Container
	if drag.Token() != nil && drag.OverHome() {
		home = s.Board.Home(drag.Token())
	}
	for row := 0; row < merge.Rows; row++ {
		for col := 0; col < merge.Cols; col++ {
			c := s.Board.Grid().Cell(row, col)
			b := c.Bounds()
			clr := cellColor
			if c == home {
				clr = homeColor
			}
			vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		}
	}

	e := s.Board.Economy()
	r.drawText(dst, fmt.Sprintf("Coins: %d", e.Coins), float64(s.Config().ScreenWidth)/2, float64(s.Config().ScreenHeight)/2+40, 2, textColor)
}

func (r *Renderer) renderTokens(dst *ebiten.Image, s *scene.Scene) {
	views := s.Tokens()
	// held token last so it draws on top
	for pass := 0; pass < 2; pass++ {
		for _, v := range views {
			if v.Dragging != (pass == 1) {
				continue
			}
			r.drawBattery(dst, v)
		}
	}
}

func (r *Renderer) drawBattery(dst *ebiten.Image, v scene.TokenView) {
	const w, h = 56.0, 80.0
	x, y := v.Center.X-w/2, v.Center.Y-h/2
	clr := levelColor(v.Token.Level())
	if v.Dragging {
		clr.A = 0xDD
	}
	vector.DrawFilledRect(dst, float32(x+w/2-10), float32(y-8), 20, 8, textColor, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), w, h, clr, true)
	vector.StrokeRect(dst, float32(x), float32(y), w, h, 3, textColor, true)
	r.drawText(dst, fmt.Sprintf("L%d", v.Token.Level()), v.Center.X, v.Center.Y, 2, color.White)
}

func (r *Renderer) renderFlashes(dst *ebiten.Image, s *scene.Scene) {
	for _, f := range s.Effects.Flashes {
		p := s.Effects.FlashProgress(f)
		clr := levelColor(f.Level)
		clr.A = uint8(255 * (1 - p))
		vector.StrokeCircle(dst, float32(f.X), float32(f.Y), float32(30+40*p), 4, clr, true)
	}
}

func (r *Renderer) renderButtons(dst *ebiten.Image, s *scene.Scene) {
	hud := s.Config().HUD
	e := s.Board.Economy()

	spawn := buttonColor
	if !e.CanAfford() || s.Board.Grid().Full() {
		spawn = color.RGBA{0x90, 0x90, 0x90, 0xFF}
	}
	r.drawButton(dst, hud.SpawnButton, spawn, fmt.Sprintf("Buy L%d  -%d", e.SpawnLevel, e.SpawnCost))

	up := s.Board.Upgrade()
	now := s.Clock.Now()
	if up.Available() {
		r.drawButton(dst, hud.UpgradeButton, upgradeColor, fmt.Sprintf("Upgrade all %ds", int(up.Remaining(now).Seconds())))
	} else if s.Board.Started() {
		b := hud.UpgradeButton
		r.drawText(dst, fmt.Sprintf("Free upgrade in %ds", int(up.Remaining(now).Seconds())), b.X+b.W/2, b.Y+b.H/2, 1.5, textColor)
	}
}

func (r *Renderer) drawButton(dst *ebiten.Image, b merge.Rect, clr color.Color, label string) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, true)
	r.drawText(dst, label, b.X+b.W/2, b.Y+b.H/2, 2, color.White)
}

func (r *Renderer) renderToasts(dst *ebiten.Image, s *scene.Scene) {
	y := float64(s.Config().ScreenHeight) - 60
	for i := len(s.Effects.Toasts) - 1; i >= 0; i-- {
		r.drawText(dst, s.Effects.Toasts[i].Text, float64(s.Config().ScreenWidth)/2, y, 2, textColor)
		y -= 30
	}
}

// drawText draws centred text at (x, y)
func (r *Renderer) drawText(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, str, r.face, op)
}

// drawTextLeft draws text with its top-left corner at (x, y)
func (r *Renderer) drawTextLeft(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, r.face, op)
}
