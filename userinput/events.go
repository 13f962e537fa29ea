// This file is part of vitainput.
//
// vitainput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vitainput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vitainput.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "github.com/jetsetilly/vitainput/hardware/sampler"

// Event represents all the different types of host input.
type Event interface{}

// EventKeyboard is a key press or release. Key names follow the SDL naming
// convention. Letters are upper case and named keys are capitalised. For
// example, "Up", "Return", "Space", "W".
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// GamepadButton identifies a button on a gamepad with the standard layout.
type GamepadButton int

// List of valid GamepadButton values. The face buttons are named after their
// position on an Xbox style controller.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonUp
	GamepadButtonDown
	GamepadButtonLeft
	GamepadButtonRight
)

// EventGamepadButton is a gamepad button press or release.
type EventGamepadButton struct {
	Button GamepadButton
	Down   bool
}

// GamepadStick identifies one of the thumbsticks of a gamepad.
type GamepadStick int

// List of valid GamepadStick values.
const (
	GamepadStickLeft GamepadStick = iota
	GamepadStickRight
)

// EventGamepadStick is the new position of a thumbstick. Each axis is in the
// range of an int16. Positive values are right and down.
type EventGamepadStick struct {
	Stick GamepadStick
	Horiz int16
	Vert  int16
}

// EventTouch is a finger touching, moving on, or leaving a touch surface. X
// and Y are normalised to the range 0.0 to 1.0.
type EventTouch struct {
	Port   sampler.TouchPort
	Finger int64
	X, Y   float64
	Down   bool
}
