package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager owns the active scene and replaces it after an update asks for a
// transition. Only one scene is ever updated or drawn.
type Manager struct {
	ctx       *Context
	flow      *Flow
	factories map[ID]Factory
	current   Scene
}

// NewManager builds the initial Playing scene.
func NewManager(ctx *Context, factories map[ID]Factory) (*Manager, error) {
	if ctx == nil {
		return nil, fmt.Errorf("scene manager: context is nil")
	}
	m := &Manager{ctx: ctx, flow: NewFlow(), factories: factories}
	if err := m.build(m.flow.Current()); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Current() ID {
	return m.flow.Current()
}

func (m *Manager) Scene() Scene {
	return m.current
}

// Update runs the active scene, then applies its event. A scene that fails
// to build stops the game.
func (m *Manager) Update() error {
	if m.current == nil {
		return fmt.Errorf("scene manager: no active scene")
	}
	ev, err := m.current.Update()
	if err != nil {
		return fmt.Errorf("scene %s: %w", m.flow.Current(), err)
	}
	if ev == None {
		return nil
	}

	from := m.flow.Current()
	to, rebuild := m.flow.Apply(ev)
	if !rebuild {
		return nil
	}
	m.ctx.logf("[SceneManager] %s: %s -> %s", ev, from, to)
	return m.build(to)
}

// Reload rebuilds the active scene in place, used when prefab files change.
func (m *Manager) Reload() error {
	m.ctx.logf("[SceneManager] reloading %s", m.flow.Current())
	return m.build(m.flow.Current())
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}

func (m *Manager) build(id ID) error {
	factory, ok := m.factories[id]
	if !ok || factory == nil {
		return fmt.Errorf("scene manager: no factory for scene %s", id)
	}
	next, err := factory(m.ctx)
	if err != nil {
		return fmt.Errorf("scene manager: build %s: %w", id, err)
	}
	m.current = next
	return nil
}
