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

// Package joydev implements a sampler.Sampler for the Linux joystick device
// (/dev/input/jsN). Events are read from the device by a background goroutine
// and the most recent state is returned by the peek functions. The device has
// no touch surface so the touch ports never report contacts.
//
// Button and axis numbering follows the layout of the Linux xpad driver,
// which is shared by most modern gamepads.
package joydev

import (
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/userinput"
)

// event types in a js_event record
const (
	eventButton = 0x01
	eventAxis   = 0x02

	// set in addition to one of the above for the synthetic events sent when
	// the device is opened
	eventInit = 0x80
)

// jsEvent is the record read from the joystick device.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// the gamepad button for each joystick button number
var joyButtons = []userinput.GamepadButton{
	0: userinput.GamepadButtonA,
	1: userinput.GamepadButtonB,
	2: userinput.GamepadButtonX,
	3: userinput.GamepadButtonY,
	4: userinput.GamepadButtonLeftShoulder,
	5: userinput.GamepadButtonRightShoulder,
	6: userinput.GamepadButtonBack,
	7: userinput.GamepadButtonStart,
}

// joystick axis numbers
const (
	axisLeftX  = 0
	axisLeftY  = 1
	axisRightX = 3
	axisRightY = 4
	axisHatX   = 6
	axisHatY   = 7
	numAxes    = 8
)

// decoder translates js_event records into userinput events. it keeps the
// position of every axis so that stick events carry both axes
type decoder struct {
	axes [numAxes]int16
}

func (dec *decoder) decode(ev jsEvent) []userinput.Event {
	switch ev.Type &^ eventInit {
	case eventButton:
		if int(ev.Number) >= len(joyButtons) || joyButtons[ev.Number] == userinput.GamepadButtonNone {
			return nil
		}
		return []userinput.Event{userinput.EventGamepadButton{
			Button: joyButtons[ev.Number],
			Down:   ev.Value != 0,
		}}

	case eventAxis:
		if int(ev.Number) >= numAxes {
			return nil
		}
		dec.axes[ev.Number] = ev.Value

		switch ev.Number {
		case axisLeftX, axisLeftY:
			return []userinput.Event{userinput.EventGamepadStick{
				Stick: userinput.GamepadStickLeft,
				Horiz: dec.axes[axisLeftX],
				Vert:  dec.axes[axisLeftY],
			}}
		case axisRightX, axisRightY:
			return []userinput.Event{userinput.EventGamepadStick{
				Stick: userinput.GamepadStickRight,
				Horiz: dec.axes[axisRightX],
				Vert:  dec.axes[axisRightY],
			}}
		case axisHatX:
			return hat(ev.Value, userinput.GamepadButtonLeft, userinput.GamepadButtonRight)
		case axisHatY:
			return hat(ev.Value, userinput.GamepadButtonUp, userinput.GamepadButtonDown)
		}
	}

	return nil
}

// the d-pad is reported as a pair of axes. each axis is converted to a pair of
// button events
func hat(v int16, neg userinput.GamepadButton, pos userinput.GamepadButton) []userinput.Event {
	return []userinput.Event{
		userinput.EventGamepadButton{Button: neg, Down: v < 0},
		userinput.EventGamepadButton{Button: pos, Down: v > 0},
	}
}

// apply the joystick state to a controller snapshot
func peek(ctrl *userinput.Controllers, analog bool, frame uint64) sampler.ControllerData {
	d := ctrl.Controller()
	d.Frame = frame
	if !analog {
		d.LX, d.LY = sampler.StickNeutral, sampler.StickNeutral
		d.RX, d.RY = sampler.StickNeutral, sampler.StickNeutral
	}
	return d
}
