package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "level1"

const (
	EntityPlayer   = "player"
	EntityCamera   = "camera"
	EntityCoin     = "coin"
	EntityFlagUp   = "flag_up"
	EntityFlagDown = "flag_down"
)

var (
	ErrNoPlayerSpawn = errors.New("level: no player spawn")
	ErrNoGoal        = errors.New("level: no goal marker")
	ErrLayerSize     = errors.New("level: layer size does not match grid")
	ErrNoTileset     = errors.New("level: tileset path is empty")
)

type Level struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	TileW    int      `json:"tile_w"`
	TileH    int      `json:"tile_h"`
	Tileset  Tileset  `json:"tileset"`
	Layers   []Layer  `json:"layers"`
	Entities []Entity `json:"entities,omitempty"`
}

// Tileset is a sheet of TileW x TileH tiles laid out Columns wide. Tile id n
// in a layer selects sheet index n-1; 0 is empty.
type Tileset struct {
	Path    string `json:"path"`
	Columns int    `json:"columns"`
}

type Layer struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics,omitempty"`
	Tiles   []int  `json:"tiles"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

// LoadLevel reads, decodes and validates a level. The ".json" suffix is optional.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("validate level %s: %w", name, err)
	}
	return &lvl, nil
}

// Validate rejects level data that would leave the world half-built.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level: invalid grid %dx%d", l.Width, l.Height)
	}
	if l.TileW <= 0 || l.TileH <= 0 {
		return fmt.Errorf("level: invalid tile size %dx%d", l.TileW, l.TileH)
	}
	if l.Tileset.Path == "" {
		return ErrNoTileset
	}
	for _, layer := range l.Layers {
		if len(layer.Tiles) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %q has %d tiles, want %d", ErrLayerSize, layer.Name, len(layer.Tiles), l.Width*l.Height)
		}
	}

	players, goals := 0, 0
	for i, ent := range l.Entities {
		switch ent.Type {
		case EntityPlayer:
			players++
		case EntityFlagUp, EntityFlagDown:
			goals++
		case EntityCamera, EntityCoin:
		default:
			return fmt.Errorf("level: entity %d: unknown type %q", i, ent.Type)
		}
	}
	if players == 0 {
		return ErrNoPlayerSpawn
	}
	if players > 1 {
		return fmt.Errorf("level: %d player spawns, want 1", players)
	}
	if goals == 0 {
		return ErrNoGoal
	}
	return nil
}

// Spawn returns the player spawn position.
func (l *Level) Spawn() (float64, float64, bool) {
	for _, ent := range l.Entities {
		if ent.Type == EntityPlayer {
			return float64(ent.X), float64(ent.Y), true
		}
	}
	return 0, 0, false
}

// PixelSize returns the level extent in world pixels.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Width * l.TileW), float64(l.Height * l.TileH)
}

// Count returns how many entities of the given type the level declares.
func (l *Level) Count(entityType string) int {
	n := 0
	for _, ent := range l.Entities {
		if ent.Type == entityType {
			n++
		}
	}
	return n
}
