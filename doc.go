// Package glide is a headless viewport-motion engine for pannable, zoomable
// 2D canvases.
//
// Hosts forward raw pointer, touch, and wheel input to an [Engine]; the
// engine answers with a continuously evolving [Transform] that maps world
// space to screen space:
//
//	screen = (X, Y) + world * Scale
//
// Dragging follows the pointer directly, releases coast with friction, the
// edges of the world stretch elastically ("rubber banding") and spring back,
// and zoom always keeps the focal point fixed on screen.
//
// # Quick start
//
//	engine, err := glide.New(glide.Config{PhysicsPreset: "fluid"},
//		glide.WithFrameSource(frames))
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	engine.Resize(800, 600)
//	engine.PointerDown(glide.PointerEvent{ID: 0, X: 400, Y: 300})
//	engine.PointerMove(glide.PointerEvent{ID: 0, X: 450, Y: 300})
//	engine.PointerUp(glide.PointerEvent{ID: 0, X: 450, Y: 300})
//
// The engine never runs physics from input callbacks. It asks its
// [FrameSource] for a frame and integrates once per display refresh until
// both pan and zoom have settled, then sleeps until new input arrives.
// [FrameQueue] is a FrameSource pumped explicitly by the host, e.g. from
// ebiten's Update:
//
//	func (g *Game) Update() error {
//		g.frames.Pump(time.Now())
//		return nil
//	}
//
// # Hosts
//
// Sub-packages adapt real input systems: [github.com/phanxgames/glide/ebitenhost]
// for Ebitengine windows and [github.com/phanxgames/glide/tuihost] for
// terminals. Both render through the [WorldRenderer] and [HudRenderer]
// capability interfaces.
//
// # Physics profiles
//
// Spring and damping constants come from a named [PhysicsProfile]: "rigid",
// "default", or "fluid", or any profile added with [RegisterProfile].
// Configuration can also be loaded from YAML with [LoadConfig].
//
// # Headless driving
//
// [Simulator] and [ScriptRunner] replay injected gestures at a fixed 60 Hz
// clock, which is how the tests and the glide CLI exercise the engine.
package glide
