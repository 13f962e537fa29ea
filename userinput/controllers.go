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

import (
	"slices"
	"sync"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

// the position of a stick when pushed by one of the keyboard stick keys
const keyStickPush = 255

// the console button for each keyboard key
var keyButtons = map[string]sampler.Buttons{
	"Up":     sampler.Up,
	"Down":   sampler.Down,
	"Left":   sampler.Left,
	"Right":  sampler.Right,
	"W":      sampler.Up,
	"S":      sampler.Down,
	"A":      sampler.Left,
	"D":      sampler.Right,
	"I":      sampler.Triangle,
	"L":      sampler.Circle,
	"K":      sampler.Cross,
	"J":      sampler.Square,
	"Q":      sampler.LTrigger,
	"E":      sampler.RTrigger,
	"Return": sampler.Start,
	"Space":  sampler.Select,
}

// the console button for each gamepad button
var gamepadButtons = map[GamepadButton]sampler.Buttons{
	GamepadButtonA:             sampler.Cross,
	GamepadButtonB:             sampler.Circle,
	GamepadButtonX:             sampler.Square,
	GamepadButtonY:             sampler.Triangle,
	GamepadButtonLeftShoulder:  sampler.LTrigger,
	GamepadButtonRightShoulder: sampler.RTrigger,
	GamepadButtonBack:          sampler.Select,
	GamepadButtonStart:         sampler.Start,
	GamepadButtonUp:            sampler.Up,
	GamepadButtonDown:          sampler.Down,
	GamepadButtonLeft:          sampler.Left,
	GamepadButtonRight:         sampler.Right,
}

type contact struct {
	finger int64
	x, y   uint16
}

// Controllers accumulates host events into controller and touch state. It is
// safe to send events from one goroutine while reading the state from
// another.
type Controllers struct {
	crit sync.Mutex

	// deadzone applied to the gamepad thumbsticks
	deadzone Deadzone

	// buttons held by each source are kept separately so that releasing a
	// key does not release the same button held on the gamepad
	keys    map[string]bool
	gamepad sampler.Buttons

	// stick state from the gamepad and from the keyboard stick keys. the
	// keyboard takes priority when any stick key is held
	lx, ly, rx, ry uint8
	stickKeys      [4]bool

	contacts [sampler.NumTouchPorts][]contact
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(deadzone Deadzone) *Controllers {
	c := &Controllers{
		deadzone: deadzone,
	}
	c.resetState()
	return c
}

// SetDeadzone changes the deadzone applied to future thumbstick events.
func (c *Controllers) SetDeadzone(deadzone Deadzone) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.deadzone = deadzone
}

// Reset all state to the neutral position with no touch contacts.
func (c *Controllers) Reset() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.resetState()
}

func (c *Controllers) resetState() {
	c.keys = make(map[string]bool)
	c.gamepad = 0
	c.lx, c.ly = sampler.StickNeutral, sampler.StickNeutral
	c.rx, c.ry = sampler.StickNeutral, sampler.StickNeutral
	c.stickKeys = [4]bool{}
	for i := range c.contacts {
		c.contacts[i] = c.contacts[i][:0]
	}
}

// HandleUserInput updates the state with the host event. Returns true if the
// event was meaningful. Events that are not understood are ignored and false
// is returned.
func (c *Controllers) HandleUserInput(ev Event) (bool, error) {
	c.crit.Lock()
	defer c.crit.Unlock()

	switch ev := ev.(type) {
	case EventKeyboard:
		return c.keyboard(ev), nil
	case EventGamepadButton:
		return c.gamepadButton(ev), nil
	case EventGamepadStick:
		return c.gamepadStick(ev), nil
	case EventTouch:
		return c.touch(ev)
	}

	return false, nil
}

func (c *Controllers) keyboard(ev EventKeyboard) bool {
	if ev.Repeat {
		return false
	}

	switch ev.Key {
	case "1", "2", "3", "4":
		c.stickKeys[ev.Key[0]-'1'] = ev.Down
		return true
	}

	if _, ok := keyButtons[ev.Key]; !ok {
		return false
	}

	if ev.Down {
		c.keys[ev.Key] = true
	} else {
		delete(c.keys, ev.Key)
	}

	return true
}

func (c *Controllers) gamepadButton(ev EventGamepadButton) bool {
	b, ok := gamepadButtons[ev.Button]
	if !ok {
		return false
	}
	if ev.Down {
		c.gamepad |= b
	} else {
		c.gamepad &^= b
	}
	return true
}

func (c *Controllers) gamepadStick(ev EventGamepadStick) bool {
	x := AxisInt16(ev.Horiz, c.deadzone)
	y := AxisInt16(ev.Vert, c.deadzone)

	switch ev.Stick {
	case GamepadStickLeft:
		c.lx, c.ly = x, y
	case GamepadStickRight:
		c.rx, c.ry = x, y
	default:
		return false
	}

	return true
}

func (c *Controllers) touch(ev EventTouch) (bool, error) {
	if !ev.Port.Valid() {
		return false, curated.Errorf(sampler.UnknownTouchPort, int(ev.Port))
	}

	l := c.contacts[ev.Port]
	idx := slices.IndexFunc(l, func(t contact) bool {
		return t.finger == ev.Finger
	})

	if !ev.Down {
		if idx >= 0 {
			c.contacts[ev.Port] = slices.Delete(l, idx, idx+1)
		}
		return true, nil
	}

	x, y := TouchPosition(ev.X, ev.Y)
	if idx >= 0 {
		l[idx].x, l[idx].y = x, y
	} else {
		c.contacts[ev.Port] = append(l, contact{finger: ev.Finger, x: x, y: y})
	}

	return true, nil
}

// Controller returns the current controller state. The Frame field is not
// set.
func (c *Controllers) Controller() sampler.ControllerData {
	c.crit.Lock()
	defer c.crit.Unlock()

	d := sampler.ControllerData{
		Buttons: c.gamepad,
		LX:      c.lx,
		LY:      c.ly,
		RX:      c.rx,
		RY:      c.ry,
	}

	for k := range c.keys {
		d.Buttons |= keyButtons[k]
	}

	// keyboard stick keys in the order up, right, down, left
	if c.stickKeys != [4]bool{} {
		d.LX, d.LY = sampler.StickNeutral, sampler.StickNeutral
		if c.stickKeys[0] {
			d.LY = 0
		}
		if c.stickKeys[1] {
			d.LX = keyStickPush
		}
		if c.stickKeys[2] {
			d.LY = keyStickPush
		}
		if c.stickKeys[3] {
			d.LX = 0
		}
	}

	return d
}

// Touch returns the current contacts on the touch port. Contacts are
// reported in the order they were made. Contacts beyond the capacity of the
// panel are not reported. The Frame field is not set.
func (c *Controllers) Touch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}

	c.crit.Lock()
	defer c.crit.Unlock()

	var td sampler.TouchData
	for _, t := range c.contacts[port] {
		if td.ReportNum >= input.TouchCapacity(port) || !td.Append(t.x, t.y) {
			break // for loop
		}
	}

	return td, nil
}
