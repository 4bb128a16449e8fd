// Package ebitenhost runs an animator scene inside an ebiten game loop.
//
// The host advances a ManualClock by one tick period every Update, so all
// animator timers fire on ebiten's update goroutine, and draws the element
// tree as nested boxes for inspection.
package ebitenhost

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/animator"
)

// RunConfig holds window settings.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before the tree is drawn.
	Background color.Color
	// ShowLabels prints each node's name and class inside its box.
	ShowLabels bool
}

// Game is an ebiten.Game drawing a scene animated on clock.
type Game struct {
	scene  *animator.Scene
	clock  *animator.ManualClock
	cfg    RunConfig
	update func() error
}

// New creates a game. Zero window sizes default to 640x480.
func New(scene *animator.Scene, clock *animator.ManualClock, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == nil {
		cfg.Background = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x26, A: 0xff}
	}
	return &Game{scene: scene, clock: clock, cfg: cfg}
}

// SetUpdateFunc registers fn to run after the clock advanced each frame.
// A non-nil error ends the game loop.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.update = fn
}

// Update advances the clock by one tick period.
func (g *Game) Update() error {
	g.clock.Advance(time.Second / time.Duration(ebiten.TPS()))
	if g.update != nil {
		return g.update()
	}
	return nil
}

// Draw renders every displayed node as a filled box.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	for _, b := range Layout(g.scene, float64(g.cfg.Width)) {
		if b.Fill.A > 0 {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.Fill, false)
		}
		if g.cfg.ShowLabels {
			ebitenutil.DebugPrintAt(screen, b.Label, int(b.X)+4, int(b.Y)+2)
		}
	}
}

// Layout returns the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and blocks until it closes.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}

// Box is the screen rectangle of one node.
type Box struct {
	Node       *animator.Node
	X, Y, W, H float64
	Fill       color.NRGBA
	Label      string
}

const (
	indent    = 16.0
	rowHeight = 20.0
	padding   = 8.0
)

// Layout stacks the displayed nodes of scene vertically, indented by depth.
// Nodes with display none are skipped with their subtrees; hidden nodes keep
// their space. Fill alpha is scaled by opacity.
func Layout(scene *animator.Scene, width float64) []Box {
	var boxes []Box
	y := padding
	var visit func(n *animator.Node, depth int)
	visit = func(n *animator.Node, depth int) {
		st := scene.ComputedStyle(n, []string{"display", "visibility", "opacity", "backgroundColor", "width", "height", "marginLeft", "marginTop"})
		if st["display"] == "none" {
			return
		}
		y += px(st["marginTop"], 0)
		x := padding + float64(depth)*indent + px(st["marginLeft"], 0)
		b := Box{
			Node:  n,
			X:     x,
			Y:     y,
			W:     px(st["width"], width-x-padding),
			H:     px(st["height"], rowHeight-2),
			Label: label(n),
		}
		if c, ok := animator.ParseColor(st["backgroundColor"]); ok && st["visibility"] != "hidden" {
			c.A = uint8(float64(c.A) * opacity(st["opacity"]))
			b.Fill = c
		}
		boxes = append(boxes, b)
		y += b.H + 2
		for _, c := range n.Children() {
			visit(c, depth+1)
		}
	}
	for _, c := range scene.Root().Children() {
		visit(c, 0)
	}
	return boxes
}

func label(n *animator.Node) string {
	if n.ClassName() == "" {
		return n.Name
	}
	return n.Name + " ." + strings.ReplaceAll(n.ClassName(), " ", ".")
}

func px(value string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "px"), 64)
	if err != nil {
		return fallback
	}
	return v
}

func opacity(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 1
	}
	return max(0, min(1, v))
}
