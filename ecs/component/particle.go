package component

import "github.com/hajimehoshi/ebiten/v2"

// Range is an inclusive uniform random range. Min == Max is a fixed value.
type Range struct {
	Min float64
	Max float64
}

// EmitterConfig describes the particles an emitter launches.
type EmitterConfig struct {
	Frames     []*ebiten.Image
	ScaleStart float64
	ScaleEnd   float64
	AlphaStart float64
	AlphaEnd   float64
	LifeFrames int
	SpeedX     Range
	SpeedY     Range
	GravityY   float64
	// Quantity is how many particles one emission launches.
	Quantity int
	// MaxAlive caps live particles for this emitter; 0 means no cap.
	MaxAlive int
}

// Burst is a one-shot emission queued at a world position.
type Burst struct {
	X float64
	Y float64
}

// ParticleEmitter launches particles continuously while On, and once per
// queued Burst.
type ParticleEmitter struct {
	Name   string
	Config EmitterConfig
	On     bool
	// Follow, when non-zero, is the ecs.Entity whose transform the stream
	// tracks. OffsetX/OffsetY is added to the followed position, and to the
	// player position when bursts are queued.
	Follow  uint64
	OffsetX float64
	OffsetY float64
	Bursts  []Burst
	Alive   int
	// Launched counts every particle ever launched.
	Launched int
}

// Start turns on the continuous stream.
func (e *ParticleEmitter) Start() { e.On = true }

// Stop turns off the continuous stream; live particles finish normally.
func (e *ParticleEmitter) Stop() { e.On = false }

// EmitAt queues a one-shot emission.
func (e *ParticleEmitter) EmitAt(x, y float64) {
	e.Bursts = append(e.Bursts, Burst{X: x, Y: y})
}

var ParticleEmitterComponent = NewComponent[ParticleEmitter]()

// Particle is a single live particle.
type Particle struct {
	Emitter    uint64
	VX         float64
	VY         float64
	GravityY   float64
	Age        int
	LifeFrames int
	ScaleStart float64
	ScaleEnd   float64
	AlphaStart float64
	AlphaEnd   float64
}

var ParticleComponent = NewComponent[Particle]()
