package scene

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
)

var skyColor = color.NRGBA{R: 0x5f, G: 0xcd, B: 0xe4, A: 0xff}

// PlayingScene runs the level. It is always built fresh from level data.
type PlayingScene struct {
	ctx *Context

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	physics   *system.PhysicsSystem
	collect   *system.PickupCollectSystem
	render    *system.RenderSystem
	loaded    entity.LoadedLevel

	paused bool
	pause  *ebitenui.UI
	frames int
}

func NewPlaying(ctx *Context) (Scene, error) {
	lvl, err := levels.LoadLevelFromFS(ctx.Level)
	if err != nil {
		return nil, fmt.Errorf("playing: %w", err)
	}

	w := ecs.NewWorld()
	loaded, err := entity.LoadLevelToWorld(w, lvl, ctx.Loaders)
	if err != nil {
		return nil, fmt.Errorf("playing: %w", err)
	}

	settings := ctx.Records.Settings()
	viewW, viewH := ctx.viewSize()

	p := &PlayingScene{
		ctx:     ctx,
		world:   w,
		input:   system.NewInputSystem(ctx.poll()),
		physics: system.NewPhysicsSystem(),
		collect: system.NewPickupCollectSystem(),
		render:  system.NewRenderSystem(),
		loaded:  loaded,
	}
	p.scheduler = ecs.NewScheduler(
		p.input,
		system.NewDebugToggleSystem(),
		system.NewRestartSystem(),
		system.NewPlayerControllerSystem(),
		system.NewEffectsSystem(ctx.rng()),
		p.physics,
		system.NewOverlapSystem(),
		p.collect,
		system.NewGoalSystem(),
		system.NewPickupHoverSystem(),
		system.NewParticleSystem(ctx.rng()),
		system.NewAnimationSystem(),
		system.NewCameraSystem(viewW, viewH),
		system.NewAudioSystem(settings.SFXVolume, settings.Muted || ctx.Mute),
	)

	// An R still held from the previous scene must not restart this one.
	p.input.Prime(w)

	ctx.logf("[Playing] level %q: %d coins, %d flags", lvl.Name, loaded.Coins, loaded.Goals)
	return p, nil
}

func (p *PlayingScene) World() *ecs.World { return p.world }

func (p *PlayingScene) Player() ecs.Entity { return p.loaded.Player }

func (p *PlayingScene) Paused() bool { return p.paused }

// Frames is the number of unpaused ticks since the level started.
func (p *PlayingScene) Frames() int { return p.frames }

func (p *PlayingScene) Collected() int { return p.collect.Collected() }

func (p *PlayingScene) Update() (Event, error) {
	if p.paused {
		p.input.Update(p.world)
		if p.pausePressed() {
			p.setPaused(false)
		} else if p.pause != nil {
			p.pause.Update()
		}
		return None, nil
	}

	p.scheduler.Update(p.world)
	p.frames++

	// A flag reached in the same frame as a restart press wins.
	if _, ok := ecs.First(p.world, component.LevelCompleteRequestComponent.Kind()); ok {
		stats, err := p.ctx.Records.RecordWin(p.frames)
		if err != nil {
			p.ctx.logf("[Playing] Warning: save stats: %v", err)
		}
		p.ctx.LastWinFrames = p.frames
		p.ctx.logf("[Playing] level complete in %d frames (%d coins, wins %d)", p.frames, p.collect.Collected(), stats.Wins)
		return GoalReached, nil
	}
	if _, ok := ecs.First(p.world, component.ReloadRequestComponent.Kind()); ok {
		return Restart, nil
	}

	if p.pausePressed() {
		p.setPaused(true)
	}
	return None, nil
}

func (p *PlayingScene) pausePressed() bool {
	pressed := false
	ecs.ForEach(p.world, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		pressed = pressed || in.Pressed.Pause
	})
	return pressed
}

func (p *PlayingScene) setPaused(paused bool) {
	p.paused = paused
	if paused && p.pause == nil && !p.ctx.Headless {
		p.pause = NewPauseUI(func() { p.paused = false })
	}
}

func (p *PlayingScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	p.render.Draw(p.world, screen)
	if system.PhysicsDebugEnabled(p.world) {
		system.DrawPhysicsDebug(p.physics.Space(), p.world, screen)
	}
	if p.ctx.Debug {
		system.DrawDebugHUD(p.world, screen)
	}
	if p.paused && p.pause != nil {
		p.pause.Draw(screen)
	}
}
