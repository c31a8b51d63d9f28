package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// WonScene shows the win message and waits for a fresh R press.
type WonScene struct {
	ctx   *Context
	input component.Input
	wins  int
	best  int
	last  int
}

func NewWon(ctx *Context) (Scene, error) {
	s := &WonScene{
		ctx:  ctx,
		wins: ctx.Records.Stats().Wins,
		best: ctx.Records.Stats().BestFrames,
		last: ctx.LastWinFrames,
	}
	// Sample what is held on entry so an R still held from play does not
	// count as a press.
	s.input.Latch(ctx.poll()())
	return s, nil
}

func (s *WonScene) Update() (Event, error) {
	s.input.Latch(s.ctx.poll()())
	if s.input.Pressed.Restart {
		return Restart, nil
	}
	return None, nil
}

// Lines is the text the scene shows, top to bottom.
func (s *WonScene) Lines() []string {
	lines := []string{"You Win!", "Press R to play again"}
	if s.last > 0 {
		lines = append(lines, fmt.Sprintf("Time: %s", formatFrames(s.last)))
	}
	if s.best > 0 {
		lines = append(lines, fmt.Sprintf("Best: %s", formatFrames(s.best)))
	}
	lines = append(lines, fmt.Sprintf("Wins: %d", s.wins))
	return lines
}

func formatFrames(frames int) string {
	secs := float64(frames) / common.TPS
	return fmt.Sprintf("%.2fs", secs)
}

func (s *WonScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	face := ebtext.NewGoXFace(basicfont.Face7x13)
	const titleScale = 4.0
	viewW, viewH := s.ctx.viewSize()

	lines := s.Lines()
	y := viewH/2 - 60
	for i, line := range lines {
		scale := 2.0
		if i == 0 {
			scale = titleScale
		}
		tw, _ := ebtext.Measure(line, face, 0)
		op := &ebtext.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(viewW/2-tw*scale/2, y)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, face, op)
		y += 13*scale + 12
	}
}
