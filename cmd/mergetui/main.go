package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"chargeracer/merge"
	"chargeracer/scene"
	"chargeracer/vehicle"
)

// Each terminal cell covers this many host pixels
const (
	colWidth  = 10.0
	rowHeight = 25.0
)

// Terminal row 0 starts at this host y, just above the charging slots
const viewTop = 480.0

type app struct {
	screen tcell.Screen
	scene  *scene.Scene

	pointer     merge.Point
	pointerDown bool
	buy         bool
	upgrade     bool

	// mouse samples since the last tick, oldest first
	pending []pointerSample
}

type pointerSample struct {
	at   merge.Point
	down bool
}

func newApp(cfg scene.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	// No throttle key here, the vehicle runs on auto throttle
	cfg.Vehicle.AutoThrottle = true
	return &app{screen: screen, scene: scene.New(cfg)}, nil
}

// toHost maps the centre of a terminal cell into host coordinates
func toHost(x, y int) merge.Point {
	return merge.Point{
		X: (float64(x) + 0.5) * colWidth,
		Y: viewTop + (float64(y)+0.5)*rowHeight,
	}
}

func toTerm(p merge.Point) (int, int) {
	return int(p.X / colWidth), int((p.Y - viewTop) / rowHeight)
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'b':
				a.buy = true
			case 'u':
				a.upgrade = true
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointer = toHost(x, y)
		a.pointerDown = ev.Buttons()&tcell.Button1 != 0
		a.pending = append(a.pending, pointerSample{at: a.pointer, down: a.pointerDown})

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) tick() {
	// A press and release can land between two ticks
	for _, ps := range a.pending {
		a.scene.Pointer(ps.at, ps.down)
	}
	a.pending = a.pending[:0]

	a.scene.Tick(scene.Input{
		Pointer:     a.pointer,
		PointerDown: a.pointerDown,
		Throttle:    vehicle.Coast,
		Buy:         a.buy,
		Upgrade:     a.upgrade,
	})
	a.buy, a.upgrade = false, false
}

var (
	styleText    = tcell.StyleDefault
	styleCell    = tcell.StyleDefault.Background(tcell.NewRGBColor(0x30, 0x3A, 0x44))
	styleHome    = tcell.StyleDefault.Background(tcell.NewRGBColor(0x3E, 0x5E, 0x80))
	styleSlot    = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2C, 0x5F, 0x8D))
	styleButton  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleUpgrade = tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack)
	styleCharge  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

var levelColors = []tcell.Color{
	tcell.ColorGray,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorPurple,
	tcell.ColorOrange,
	tcell.ColorRed,
	tcell.ColorTeal,
	tcell.ColorYellow,
}

func (a *app) draw() {
	a.screen.Clear()
	s := a.scene
	width, height := a.screen.Size()

	var home merge.Container
	if tok := s.Drag().Token(); tok != nil && s.Drag().OverHome() {
		home = s.Board.Home(tok)
	}
	hud := s.Config().HUD
	upgradeReady := s.Board.Upgrade().Available()

	// Backgrounds
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := toHost(x, y)
			var st tcell.Style
			switch c := s.Board.ContainerAt(p); {
			case c != nil && c == home:
				st = styleHome
			case c != nil && c.Location().Kind == merge.InChargingSlot:
				st = styleSlot
			case c != nil:
				st = styleCell
			case hud.SpawnButton.Contains(p):
				st = styleButton
			case upgradeReady && hud.UpgradeButton.Contains(p):
				st = styleUpgrade
			default:
				continue
			}
			a.screen.SetContent(x, y, ' ', nil, st)
		}
	}

	// Tokens, the held one last
	views := s.Tokens()
	for pass := 0; pass < 2; pass++ {
		for _, v := range views {
			if v.Dragging != (pass == 1) {
				continue
			}
			a.drawToken(v)
		}
	}

	e := s.Board.Economy()
	a.drawLabel(hud.SpawnButton, fmt.Sprintf("[b] Buy L%d -%d", e.SpawnLevel, e.SpawnCost), styleButton)
	if upgradeReady {
		a.drawLabel(hud.UpgradeButton, "[u] Upgrade all", styleUpgrade)
	}

	m := s.Station.Meter()
	const barWidth = 30
	filled := int(m.Fraction() * barWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	a.drawText(0, 0, fmt.Sprintf("Charge [%s] %.1f/%.0f  +%.0f/min", bar, m.Current, m.Max, s.Station.TotalRate()), styleCharge)

	now := s.Clock.Now()
	status := fmt.Sprintf("Coins %d  Highest L%d  Vehicle x=%.0f", e.Coins, e.HighestLevel, s.Vehicle.Poses().Chassis.Position.X)
	if s.Board.Started() && !upgradeReady {
		status += fmt.Sprintf("  Free upgrade in %ds", int(s.Board.Upgrade().Remaining(now).Seconds()))
	}
	a.drawText(0, height-2, status, styleText)

	if n := len(s.Effects.Toasts); n > 0 {
		a.drawText(0, height-1, s.Effects.Toasts[n-1].Text, styleText.Bold(true))
	} else if !s.Board.Started() {
		a.drawText(0, height-1, "Drag a battery with the mouse or press b to buy. q quits.", styleText)
	}

	a.screen.Show()
}

func (a *app) drawToken(v scene.TokenView) {
	x, y := toTerm(v.Center)
	st := tcell.StyleDefault.
		Background(levelColors[(v.Token.Level()-1)%len(levelColors)]).
		Foreground(tcell.ColorWhite).
		Bold(v.Dragging)
	for dy := -1; dy <= 1; dy++ {
		for dx := -3; dx <= 3; dx++ {
			a.screen.SetContent(x+dx, y+dy, ' ', nil, st)
		}
	}
	label := fmt.Sprintf("L%d", v.Token.Level())
	a.drawText(x-len(label)/2, y, label, st)
}

func (a *app) drawLabel(r merge.Rect, label string, st tcell.Style) {
	x, y := toTerm(r.Center())
	a.drawText(x-len(label)/2, y, label, st)
}

func (a *app) drawText(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.scene.Config().TPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(eventChan, quit)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || ev == nil || !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to tuning.yaml (defaults are used when empty)")
	flag.Parse()

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	a.run()
}
