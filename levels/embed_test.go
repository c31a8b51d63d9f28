package levels

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedDefaultLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("")
	if err != nil {
		t.Fatalf("load default level: %v", err)
	}
	x, y, ok := lvl.Spawn()
	if !ok || x != 30 || y != 150 {
		t.Fatalf("expected spawn (30,150), got (%v,%v) ok=%v", x, y, ok)
	}
	if lvl.Count(EntityCoin) == 0 {
		t.Fatalf("expected coins in default level")
	}
	if lvl.Count(EntityFlagUp) != 1 || lvl.Count(EntityFlagDown) != 1 {
		t.Fatalf("expected one flag of each variant")
	}
	physics := 0
	for _, layer := range lvl.Layers {
		if layer.Physics {
			physics++
		}
	}
	if physics != 1 {
		t.Fatalf("expected exactly one collision layer, got %d", physics)
	}
}

func TestLoadLevelSuffixOptional(t *testing.T) {
	a, err := LoadLevelFromFS("level1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadLevelFromFS("level1.json")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != b.Name {
		t.Fatalf("expected same level, got %q and %q", a.Name, b.Name)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Level {
		return Level{
			Width: 2, Height: 1, TileW: 18, TileH: 18,
			Tileset: Tileset{Path: "tiles/tiles.png", Columns: 10},
			Layers:  []Layer{{Name: "ground", Physics: true, Tiles: []int{1, 1}}},
			Entities: []Entity{
				{Type: EntityPlayer, X: 1, Y: 1},
				{Type: EntityFlagDown, X: 20, Y: 0},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(l *Level)
		wantErr error
		anyErr  bool
	}{
		{name: "valid", mutate: func(l *Level) {}},
		{name: "no_player", mutate: func(l *Level) { l.Entities = l.Entities[1:] }, wantErr: ErrNoPlayerSpawn},
		{name: "no_goal", mutate: func(l *Level) { l.Entities = l.Entities[:1] }, wantErr: ErrNoGoal},
		{name: "short_layer", mutate: func(l *Level) { l.Layers[0].Tiles = []int{1} }, wantErr: ErrLayerSize},
		{name: "no_tileset", mutate: func(l *Level) { l.Tileset.Path = "" }, wantErr: ErrNoTileset},
		{name: "unknown_entity", mutate: func(l *Level) {
			l.Entities = append(l.Entities, Entity{Type: "spike"})
		}, anyErr: true},
		{name: "two_players", mutate: func(l *Level) {
			l.Entities = append(l.Entities, Entity{Type: EntityPlayer})
		}, anyErr: true},
		{name: "zero_tile_size", mutate: func(l *Level) { l.TileW = 0 }, anyErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := valid()
			tc.mutate(&lvl)
			err := lvl.Validate()
			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			case tc.anyErr:
				if err == nil {
					t.Fatalf("expected an error")
				}
			default:
				if err != nil {
					t.Fatalf("expected valid level, got %v", err)
				}
			}
		})
	}
}

func TestLoadLevelRejectsMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte(`{"width": 2,`)},
		"empty.json":  {Data: []byte(`{"width": 1, "height": 1, "tile_w": 18, "tile_h": 18, "tileset": {"path": "t.png"}}`)},
	}
	if _, err := LoadLevel(fsys, "missing"); err == nil {
		t.Fatalf("expected error for missing level")
	}
	if _, err := LoadLevel(fsys, "broken"); err == nil {
		t.Fatalf("expected error for malformed json")
	}
	if _, err := LoadLevel(fsys, "empty"); !errors.Is(err, ErrNoPlayerSpawn) {
		t.Fatalf("expected ErrNoPlayerSpawn, got %v", err)
	}
}
