package scene

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/records"
)

// Scene is one screen of the game. Update runs once per tick and returns
// the flow event it wants applied once it has returned.
type Scene interface {
	Update() (Event, error)
	Draw(screen *ebiten.Image)
}

// Factory builds a scene from scratch.
type Factory func(ctx *Context) (Scene, error)

// Context carries everything scenes share. It is created once by the game
// and handed to every factory.
type Context struct {
	Level string
	Debug bool
	// Mute silences sound effects without touching saved settings.
	Mute bool
	// Headless skips anything that needs a window, such as UI overlays.
	Headless bool

	ViewW float64
	ViewH float64

	Loaders entity.Loaders
	Records *records.Store
	Rand    *rand.Rand
	Poll    system.Poller
	Logger  *log.Logger

	// LastWinFrames is the tick count of the most recent completed run.
	LastWinFrames int
}

func (c *Context) viewSize() (float64, float64) {
	w, h := c.ViewW, c.ViewH
	if w <= 0 || h <= 0 {
		w, h = common.BaseWidth, common.BaseHeight
	}
	return w, h
}

func (c *Context) poll() system.Poller {
	if c.Poll == nil {
		return system.PollDevices
	}
	return c.Poll
}

func (c *Context) rng() *rand.Rand {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	return c.Rand
}

func (c *Context) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// DefaultFactories wires the two scenes of the game.
func DefaultFactories() map[ID]Factory {
	return map[ID]Factory{
		Playing: NewPlaying,
		Won:     NewWon,
	}
}
