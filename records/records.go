// Package records persists win statistics and sound settings between runs.
package records

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "platformer"

	statsObject    = "stats"
	settingsObject = "settings"
	globalProperty = "global"
)

type Stats struct {
	Wins int `yaml:"wins"`
	// BestFrames is the fastest completion in ticks; 0 means no win yet.
	BestFrames int `yaml:"bestFrames"`
}

type Settings struct {
	SFXVolume float64 `yaml:"sfxVolume"`
	Muted     bool    `yaml:"muted"`
}

func DefaultSettings() Settings {
	return Settings{SFXVolume: 1}
}

// Store keeps records in memory and mirrors them to gdata when available.
// A nil manager gives a memory-only store.
type Store struct {
	manager  *gdata.Manager
	stats    Stats
	settings Settings
}

// Open opens the per-user data directory for appName. When the directory
// cannot be opened the returned store still works, memory-only.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Records] Warning: gdata unavailable: %v (records will not persist)", err)
		m = nil
	}
	return NewStore(m)
}

func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Printf("[Records] Warning: %v (using defaults)", err)
	}
	return s
}

func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}

func (s *Store) Load() error {
	if s.manager == nil {
		return nil
	}
	if err := s.loadProp(statsObject, &s.stats); err != nil {
		s.stats = Stats{}
		return err
	}
	if err := s.loadProp(settingsObject, &s.settings); err != nil {
		s.settings = DefaultSettings()
		return err
	}
	s.settings.SFXVolume = clampVolume(s.settings.SFXVolume)
	return nil
}

func (s *Store) loadProp(object string, out any) error {
	if !s.manager.ObjectPropExists(object, globalProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(object, globalProperty)
	if err != nil {
		return fmt.Errorf("load %s: %w", object, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", object, err)
	}
	return nil
}

func (s *Store) saveProp(object string, v any) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", object, err)
	}
	if err := s.manager.SaveObjectProp(object, globalProperty, data); err != nil {
		return fmt.Errorf("save %s: %w", object, err)
	}
	return nil
}

func (s *Store) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return s.stats
}

func (s *Store) Settings() Settings {
	if s == nil {
		return DefaultSettings()
	}
	return s.settings
}

// RecordWin counts a completed run of frames ticks and saves the stats.
func (s *Store) RecordWin(frames int) (Stats, error) {
	if s == nil {
		return Stats{}, nil
	}
	s.stats.Wins++
	if frames > 0 && (s.stats.BestFrames == 0 || frames < s.stats.BestFrames) {
		s.stats.BestFrames = frames
	}
	return s.stats, s.saveProp(statsObject, s.stats)
}

func (s *Store) SetSettings(settings Settings) error {
	if s == nil {
		return nil
	}
	settings.SFXVolume = clampVolume(settings.SFXVolume)
	s.settings = settings
	return s.saveProp(settingsObject, s.settings)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
