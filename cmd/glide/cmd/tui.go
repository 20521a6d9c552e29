package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/glide"
	"github.com/phanxgames/glide/tuihost"
)

var tuiSound bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pan and zoom a demo canvas in the terminal",
	Long: `Open a demo canvas in the terminal. Drag with the mouse to pan, use the
wheel to zoom at the cursor, and press + / - / 0 to zoom in, zoom out, and
reset. Press q or Esc to quit.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&tuiSound, "sound", false, "play a bump when a drag hits the edge")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	opts := tuihost.Options{
		World:  gardenRenderer{world: settings.World},
		HUD:    glide.HudRendererFunc[*tuihost.Canvas](drawStatus),
		Logger: log,
	}
	if tuiSound {
		sound := tuihost.NewSound()
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sound.Cleanup()
			opts.Sound = sound
		}
	}

	host, err := tuihost.New(screen, cfg, opts)
	if err != nil {
		return err
	}
	host.Engine().SetDebugMode(verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// gardenSpacing is the world distance between flowers.
const gardenSpacing = 150

var petalStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorRed),
	tcell.StyleDefault.Foreground(tcell.ColorYellow),
	tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	tcell.StyleDefault.Foreground(tcell.ColorAqua),
}

// gardenRenderer draws a lattice of flowers inside a fenced world.
type gardenRenderer struct {
	world glide.Size
}

func (g gardenRenderer) DrawWorld(c *tuihost.Canvas, xf glide.Transform, visible glide.Rect) {
	hw, hh := g.world.Width/2, g.world.Height/2
	fence := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	// Fence posts every cell-width along the world edge.
	step := c.CellW / xf.Scale
	for x := math.Max(-hw, visible.X); x <= math.Min(hw, visible.X+visible.Width); x += step {
		c.Plot(xf, x, -hh, '─', fence)
		c.Plot(xf, x, hh, '─', fence)
	}
	step = c.CellH / xf.Scale
	for y := math.Max(-hh, visible.Y); y <= math.Min(hh, visible.Y+visible.Height); y += step {
		c.Plot(xf, -hw, y, '│', fence)
		c.Plot(xf, hw, y, '│', fence)
	}

	x0 := math.Ceil(math.Max(-hw, visible.X)/gardenSpacing) * gardenSpacing
	y0 := math.Ceil(math.Max(-hh, visible.Y)/gardenSpacing) * gardenSpacing
	for y := y0; y <= math.Min(hh, visible.Y+visible.Height); y += gardenSpacing {
		for x := x0; x <= math.Min(hw, visible.X+visible.Width); x += gardenSpacing {
			i := int(math.Abs(x/gardenSpacing)+math.Abs(y/gardenSpacing)) % len(petalStyles)
			c.Plot(xf, x, y, '✿', petalStyles[i])
		}
	}
}

func drawStatus(c *tuihost.Canvas, st glide.Status) {
	line := fmt.Sprintf(" %-8s x=%8.1f y=%8.1f scale=%.3f ", st.State, st.Transform.X, st.Transform.Y, st.Transform.Scale)
	c.Text(0, 0, line, tcell.StyleDefault.Reverse(true))
}
