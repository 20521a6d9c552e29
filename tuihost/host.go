// Package tuihost runs a glide Engine in a terminal.
//
// Mouse drags pan, the wheel zooms at the cursor, and "+", "-" and "0"
// zoom in, zoom out, and reset the view. The engine works in virtual pixels
// so the same physics constants feel right in a terminal and in a window.
package tuihost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/glide"
)

const (
	// tickInterval paces physics and redraws (~60 FPS).
	tickInterval = 16 * time.Millisecond
	// wheelPixels is the delta reported per wheel notch.
	wheelPixels = 40
	// resetDuration is the length of the "0" key flight, in seconds.
	resetDuration = 0.4

	defaultCellW = 8
	defaultCellH = 16
)

// Options configures a Host.
type Options struct {
	World glide.WorldRenderer[*Canvas]
	HUD   glide.HudRenderer[*Canvas]
	// CellW and CellH are the virtual pixel size of a cell. Zero takes 8x16.
	CellW, CellH float64
	// Sound, when set, plays a bump whenever a drag hits an edge.
	Sound *Sound
	// Sink receives every gesture event.
	Sink   glide.EventSink
	Logger *zap.Logger
	// EngineOptions are passed to glide.New after the host's own options.
	EngineOptions []glide.Option
}

// Host owns a tcell screen and a glide Engine.
type Host struct {
	screen tcell.Screen
	engine *glide.Engine
	frames *glide.FrameQueue
	canvas Canvas
	opts   Options
	sounds *soundSink
	log    *zap.Logger

	mouseDown bool
}

// New creates a host drawing to screen, which must already be initialized.
func New(screen tcell.Screen, cfg glide.Config, opts Options) (*Host, error) {
	if opts.CellW <= 0 {
		opts.CellW = defaultCellW
	}
	if opts.CellH <= 0 {
		opts.CellH = defaultCellH
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	frames := glide.NewFrameQueue()
	engineOpts := []glide.Option{glide.WithFrameSource(frames), glide.WithLogger(log)}
	var sounds *soundSink
	switch {
	case opts.Sound != nil:
		sounds = &soundSink{sound: opts.Sound, next: opts.Sink}
		engineOpts = append(engineOpts, glide.WithEventSink(sounds))
	case opts.Sink != nil:
		engineOpts = append(engineOpts, glide.WithEventSink(opts.Sink))
	}
	engineOpts = append(engineOpts, opts.EngineOptions...)

	engine, err := glide.New(cfg, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("tuihost: %w", err)
	}

	h := &Host{
		screen: screen,
		engine: engine,
		frames: frames,
		canvas: Canvas{Screen: screen, CellW: opts.CellW, CellH: opts.CellH},
		opts:   opts,
		sounds: sounds,
		log:    log,
	}
	screen.EnableMouse()
	h.resize()
	return h, nil
}

// Engine returns the hosted engine.
func (h *Host) Engine() *glide.Engine {
	return h.engine
}

// Canvas returns the drawing surface.
func (h *Host) Canvas() *Canvas {
	return &h.canvas
}

func (h *Host) resize() {
	w, ht := h.screen.Size()
	h.engine.Resize(float64(w)*h.canvas.CellW, float64(ht)*h.canvas.CellH)
}

// pixel returns the virtual pixel at the center of a cell.
func (h *Host) pixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * h.canvas.CellW, (float64(row) + 0.5) * h.canvas.CellH
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				h.engine.ZoomIn()
			case '-', '_':
				h.engine.ZoomOut()
			case '0':
				h.engine.ResetView(resetDuration)
			}
		}

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := h.pixel(col, row)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		h.engine.Wheel(glide.WheelEvent{X: x, Y: y, DeltaY: -wheelPixels})
		return
	case buttons&tcell.WheelDown != 0:
		h.engine.Wheel(glide.WheelEvent{X: x, Y: y, DeltaY: wheelPixels})
		return
	}

	pressed := buttons&tcell.Button1 != 0
	p := glide.PointerEvent{ID: 0, X: x, Y: y}
	switch {
	case pressed && !h.mouseDown:
		h.mouseDown = true
		h.engine.PointerDown(p)
	case pressed:
		h.engine.PointerMove(p)
	case h.mouseDown:
		h.mouseDown = false
		h.engine.PointerUp(p)
	}
}

// Tick runs any pending physics frame.
func (h *Host) Tick(now time.Time) {
	h.frames.Pump(now)
}

// Draw renders the world and the HUD and shows the screen.
func (h *Host) Draw() {
	h.screen.Clear()
	xf := h.engine.Transform()
	if h.opts.World != nil {
		h.opts.World.DrawWorld(&h.canvas, xf, xf.VisibleBounds(h.engine.Viewport()))
	}
	if h.opts.HUD != nil {
		h.opts.HUD.DrawHUD(&h.canvas, h.engine.Status())
	}
	h.screen.Show()
}

// Run polls terminal events on a separate goroutine and drives the engine
// from a ~60 FPS ticker until ctx is cancelled or the user quits. Engine
// calls all happen on the calling goroutine.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	defer h.engine.Close()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				h.log.Debug("quit requested")
				return nil
			}

		case now := <-ticker.C:
			h.Tick(now)
			h.Draw()
		}
	}
}
