package input

import "github.com/hajimehoshi/ebiten/v2"

// Action is a logical input.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionAbility
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionRestart
)

// Binding is the set of keys and standard gamepad buttons for one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the stick travel ignored before it counts as a press.
const AnalogDeadzone = 0.25

var Bindings = map[Action]Binding{
	ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionAbility: {
		Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionMenuLeft: {
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMenuRight: {
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMenuSelect: {
		Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionMenuBack: {
		Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	ActionRestart: {
		Keys:    []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}
