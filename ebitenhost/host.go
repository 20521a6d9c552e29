package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/glide"
)

// Zoom button geometry, in screen pixels from the bottom-right corner.
const (
	buttonSize   = 40
	buttonMargin = 16
	buttonGap    = 8
)

const (
	buttonNone = iota
	buttonZoomIn
	buttonZoomOut
)

// Options configures a Host.
type Options struct {
	// World draws world content. Nil draws nothing.
	World glide.WorldRenderer[*ebiten.Image]
	// HUD draws screen-space overlays after the world and the zoom buttons.
	HUD glide.HudRenderer[*ebiten.Image]
	// ClearColor fills the screen before drawing. Nil leaves it black.
	ClearColor color.Color
	// ZoomButtons shows "+" and "-" buttons in the bottom-right corner.
	ZoomButtons bool
	// ShowFPS prints the actual FPS and TPS in the top-left corner.
	ShowFPS bool
	// EngineOptions are passed to glide.New. A frame source option is
	// overridden; the host always paces the engine with its own queue.
	EngineOptions []glide.Option
}

// Host adapts a glide Engine to ebiten.Game.
type Host struct {
	engine *glide.Engine
	frames *glide.FrameQueue
	opts   Options

	input inputSource
	state inputState
	now   func() time.Time

	pointers  [maxPointers]pointerSlot
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool

	width, height int
	zoomIn        glide.HitRect
	zoomOut       glide.HitRect
	regions       []glide.RegionHandle

	pixel *ebiten.Image
}

// New creates an engine from cfg and wraps it in a Host.
func New(cfg glide.Config, opts Options) (*Host, error) {
	frames := glide.NewFrameQueue()
	engineOpts := append(append([]glide.Option{}, opts.EngineOptions...), glide.WithFrameSource(frames))
	engine, err := glide.New(cfg, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: %w", err)
	}
	return &Host{
		engine: engine,
		frames: frames,
		opts:   opts,
		input:  &ebitenInput{},
		now:    time.Now,
	}, nil
}

// Engine returns the hosted engine.
func (h *Host) Engine() *glide.Engine {
	return h.engine
}

// Update polls input, forwards it to the engine, and runs any pending
// physics frame.
func (h *Host) Update() error {
	h.input.poll(&h.state)
	h.process(&h.state)
	h.frames.Pump(h.now())
	return nil
}

// Layout reports the outside size as the screen size and tells the engine
// whenever it changes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.engine.Resize(float64(outsideWidth), float64(outsideHeight))
		h.layoutButtons()
	}
	return outsideWidth, outsideHeight
}

// layoutButtons places the zoom buttons and registers them as interactive
// regions so presses on them never start a pan.
func (h *Host) layoutButtons() {
	for _, r := range h.regions {
		r.Remove()
	}
	h.regions = h.regions[:0]
	if !h.opts.ZoomButtons {
		return
	}
	x := float64(h.width - buttonMargin - buttonSize)
	y := float64(h.height - buttonMargin - buttonSize)
	h.zoomOut = glide.HitRect{X: x, Y: y, Width: buttonSize, Height: buttonSize}
	h.zoomIn = glide.HitRect{X: x, Y: y - buttonGap - buttonSize, Width: buttonSize, Height: buttonSize}
	h.regions = append(h.regions,
		h.engine.AddInteractiveRegion(h.zoomIn),
		h.engine.AddInteractiveRegion(h.zoomOut),
	)
}

func (h *Host) buttonAt(x, y float64) int {
	if !h.opts.ZoomButtons {
		return buttonNone
	}
	switch {
	case h.zoomIn.Contains(x, y):
		return buttonZoomIn
	case h.zoomOut.Contains(x, y):
		return buttonZoomOut
	}
	return buttonNone
}

func (h *Host) pressButton(b int) {
	switch b {
	case buttonZoomIn:
		h.engine.ZoomIn()
	case buttonZoomOut:
		h.engine.ZoomOut()
	}
}

// Draw renders the world, the zoom buttons, and the HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.opts.ClearColor != nil {
		screen.Fill(h.opts.ClearColor)
	}
	xf := h.engine.Transform()
	if h.opts.World != nil {
		h.opts.World.DrawWorld(screen, xf, xf.VisibleBounds(h.engine.Viewport()))
	}
	if h.opts.ZoomButtons {
		h.drawButton(screen, h.zoomIn, "+")
		h.drawButton(screen, h.zoomOut, "-")
	}
	if h.opts.HUD != nil {
		h.opts.HUD.DrawHUD(screen, h.engine.Status())
	}
	if h.opts.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f",
			ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}
}

func (h *Host) drawButton(screen *ebiten.Image, r glide.HitRect, label string) {
	FillRect(screen, h.whitePixel(), r.X, r.Y, r.Width, r.Height, color.RGBA{R: 0, G: 0, B: 0, A: 160})
	ebitenutil.DebugPrintAt(screen, label, int(r.X+r.Width/2)-3, int(r.Y+r.Height/2)-8)
}

func (h *Host) whitePixel() *ebiten.Image {
	if h.pixel == nil {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h.pixel
}

// FillRect draws a solid screen-space rectangle by stretching a 1x1 white
// image.
func FillRect(dst, pixel *ebiten.Image, x, y, w, h float64, c color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, &op)
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Game, when set, is run instead of the host. It must forward Update,
	// Draw and Layout to the host.
	Game ebiten.Game
}

// Run opens a resizable window and runs the host until the window closes.
// The engine is closed on return.
func Run(h *Host, cfg RunConfig) error {
	defer h.engine.Close()
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Game != nil {
		return ebiten.RunGame(cfg.Game)
	}
	return ebiten.RunGame(h)
}
