// Package input turns keyboard and gamepad state into the simulation's
// boolean intent.
package input

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Intent polls the devices for the current frame.
func Intent() components.IntentData {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	left, right := analogX(gamepadIDs)

	return components.IntentData{
		Left:   left || Pressed(ActionMoveLeft),
		Right:  right || Pressed(ActionMoveRight),
		Up:     Pressed(ActionJump),
		Action: Pressed(ActionAbility),
	}
}

// Pressed reports whether any binding of a is held.
func Pressed(a Action) bool {
	b := Bindings[a]
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// JustPressed reports whether a binding of a went down this frame. Menus use
// it so a held key does not repeat.
func JustPressed(a Action) bool {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	b := Bindings[a]
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func analogX(ids []ebiten.GamepadID) (left, right bool) {
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -AnalogDeadzone {
			left = true
		}
		if x > AnalogDeadzone {
			right = true
		}
	}
	return left, right
}
