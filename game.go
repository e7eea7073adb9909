package lwgl

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// RunConfig configures the window and game loop created by Run and NewGame.
type RunConfig struct {
	Title  string
	Width  int // logical width; defaults to 640
	Height int // logical height; defaults to 480

	// Draw, if set, is called once per frame after the stage's update sweep.
	// The core itself renders nothing.
	Draw func(screen *ebiten.Image)

	// OnError, if set, observes the update error that is about to stop the
	// game loop. Called at most once per tick, before the error is returned
	// to ebiten.
	OnError func(err error)
}

// Game adapts a Stage to the ebiten game loop: each tick it derives dt from
// the current TPS and runs Update then LateUpdate over the whole tree. An
// error from either sweep is returned to ebiten, which stops the loop — the
// stage's fail-fast policy surfaces all the way to RunGame.
type Game struct {
	stage   *Stage
	draw    func(screen *ebiten.Image)
	onError func(err error)
	width   int
	height  int
}

// NewGame creates an [ebiten.Game] that drives the given stage.
func NewGame(stage *Stage, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	return &Game{
		stage:   stage,
		draw:    cfg.Draw,
		onError: cfg.OnError,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Update runs one frame tick: the stage's early sweep, then its late sweep.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	err := g.stage.Update(dt)
	if err == nil {
		err = g.stage.LateUpdate(dt)
	}
	if err != nil && g.onError != nil {
		g.onError(err)
	}
	return err
}

// Draw calls the configured draw callback, if any.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.draw != nil {
		g.draw(screen)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run creates a window and runs the game loop, driving stage until the loop
// ends or an update hook fails. Blocks until then; the first hook failure is
// returned.
func Run(stage *Stage, cfg RunConfig) error {
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = defaultHeight
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	return ebiten.RunGame(NewGame(stage, cfg))
}
