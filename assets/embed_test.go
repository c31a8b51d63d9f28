package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "sprites/coin.png", want: "sprites/coin.png"},
		{in: "assets/sprites/coin.png", want: "sprites/coin.png"},
		{in: "/home/dev/game/assets/tiles/tiles.png", want: "tiles/tiles.png"},
		{in: "/tmp/coin.png", want: "coin.png"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanAssetPath(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEmbeddedImagesDecode(t *testing.T) {
	tests := []struct {
		path string
		w, h int
	}{
		{path: "tiles/tiles.png", w: 180, h: 36},
		{path: "sprites/player.png", w: 96, h: 24},
		{path: "sprites/coin.png", w: 18, h: 18},
		{path: "sprites/flag_up.png", w: 18, h: 18},
		{path: "sprites/flag_down.png", w: 18, h: 18},
		{path: "particles/dirt_01.png"},
		{path: "particles/dirt_02.png"},
		{path: "particles/circle_04.png"},
		{path: "particles/circle_05.png"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			img, err := DecodeImage(tc.path)
			if err != nil {
				t.Fatalf("decode %s: %v", tc.path, err)
			}
			b := img.Bounds()
			if tc.w != 0 && (b.Dx() != tc.w || b.Dy() != tc.h) {
				t.Fatalf("expected %dx%d, got %dx%d", tc.w, tc.h, b.Dx(), b.Dy())
			}
		})
	}
}

func TestFootstepClipsEmbedded(t *testing.T) {
	for _, name := range []string{"footstep0", "footstep1", "footstep2", "footstep3", "footstep4"} {
		b, err := LoadAudio("audio/" + name + ".wav")
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
			t.Fatalf("%s is not a wav file", name)
		}
	}
}

func TestDecodeImageMissing(t *testing.T) {
	if _, err := DecodeImage("sprites/missing.png"); err == nil {
		t.Fatalf("expected error for missing image")
	}
}
