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

package input

import (
	"fmt"

	"github.com/jetsetilly/vitainput/hardware/sampler"
)

// Stick identifies one of the analog sticks.
type Stick int

// List of valid Stick values.
const (
	LeftStick Stick = iota
	RightStick
	NumSticks
)

func (s Stick) String() string {
	switch s {
	case LeftStick:
		return "left stick"
	case RightStick:
		return "right stick"
	}
	return fmt.Sprintf("stick(%d)", int(s))
}

// normalise a stick axis. the result for the full range of the axis is not
// symmetrical: 0 is -0.9921875 and 255 is +1.0
func normaliseAxis(v uint8) float32 {
	return (float32(v) - sampler.StickNeutral) / 128.0
}

// Analog returns the raw position of the stick. Each axis is in the range 0
// to 255 with a neutral position of about 127. Returns zero and false for an
// unknown stick.
func (inp *Input) Analog(s Stick) (x int, y int, ok bool) {
	c := inp.snapshot.Controller
	switch s {
	case LeftStick:
		return int(c.LX), int(c.LY), true
	case RightStick:
		return int(c.RX), int(c.RY), true
	}
	return 0, 0, false
}

// AnalogFloat returns the position of the stick normalised to the range -1.0
// to 1.0, with a neutral position of 0.0. Returns zero and false for an
// unknown stick.
func (inp *Input) AnalogFloat(s Stick) (x float32, y float32, ok bool) {
	c := inp.snapshot.Controller
	switch s {
	case LeftStick:
		return normaliseAxis(c.LX), normaliseAxis(c.LY), true
	case RightStick:
		return normaliseAxis(c.RX), normaliseAxis(c.RY), true
	}
	return 0, 0, false
}

// DPad returns the direction of the d-pad as a pair of values in the set
// {-1, 0, 1}. Right and down are positive. Opposing directions held at the same
// time cancel each other out.
func (inp *Input) DPad() (x float32, y float32) {
	b := inp.snapshot.Controller.Buttons
	axis := func(neg, pos sampler.Buttons) float32 {
		var v float32
		if b.Has(pos) {
			v++
		}
		if b.Has(neg) {
			v--
		}
		return v
	}
	return axis(sampler.Left, sampler.Right), axis(sampler.Up, sampler.Down)
}
