package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const stickDeadzone = 0.2

// Poller reads one frame of held buttons from the input devices.
type Poller func() component.Buttons

// PollDevices reads the keyboard and the first standard gamepad.
func PollDevices() component.Buttons {
	b := component.Buttons{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Restart: ebiten.IsKeyPressed(ebiten.KeyR),
		Debug:   ebiten.IsKeyPressed(ebiten.KeyD),
		Pause:   ebiten.IsKeyPressed(ebiten.KeyEscape),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			return b
		}
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			b.Left = b.Left || leftX < 0
			b.Right = b.Right || leftX > 0
		}
		b.Left = b.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		b.Right = b.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		b.Up = b.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		b.Restart = b.Restart || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return b
}

type InputSystem struct {
	poll Poller
}

func NewInputSystem(poll Poller) *InputSystem {
	if poll == nil {
		poll = PollDevices
	}
	return &InputSystem{poll: poll}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := i.poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Latch(now)
	})
}

// Prime latches what is held right now, so buttons still down when a world
// is built do not register as presses on its first frame.
func (i *InputSystem) Prime(w *ecs.World) {
	i.Update(w)
}
