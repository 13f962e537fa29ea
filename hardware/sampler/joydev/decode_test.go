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

package joydev

import (
	"testing"

	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/test"
	"github.com/jetsetilly/vitainput/userinput"
)

func TestDecode(t *testing.T) {
	var dec decoder
	ctrl := userinput.NewControllers(0)

	apply := func(ev jsEvent) {
		for _, e := range dec.decode(ev) {
			ctrl.HandleUserInput(e)
		}
	}

	// initial state events have the init bit set
	apply(jsEvent{Type: eventButton | eventInit, Number: 0, Value: 0})
	test.ExpectEquality(t, ctrl.Controller().Buttons, sampler.Buttons(0))

	apply(jsEvent{Type: eventButton, Number: 0, Value: 1})
	apply(jsEvent{Type: eventButton, Number: 7, Value: 1})
	test.ExpectEquality(t, ctrl.Controller().Buttons, sampler.Cross|sampler.Start)

	apply(jsEvent{Type: eventButton, Number: 0, Value: 0})
	test.ExpectEquality(t, ctrl.Controller().Buttons, sampler.Start)

	// unknown buttons are ignored
	test.ExpectEquality(t, len(dec.decode(jsEvent{Type: eventButton, Number: 30, Value: 1})), 0)

	// hat
	apply(jsEvent{Type: eventAxis, Number: axisHatX, Value: -32767})
	apply(jsEvent{Type: eventAxis, Number: axisHatY, Value: 32767})
	test.ExpectEquality(t, ctrl.Controller().Buttons, sampler.Start|sampler.Left|sampler.Down)
	apply(jsEvent{Type: eventAxis, Number: axisHatX, Value: 0})
	test.ExpectEquality(t, ctrl.Controller().Buttons, sampler.Start|sampler.Down)

	// sticks keep the other axis
	apply(jsEvent{Type: eventAxis, Number: axisRightX, Value: 32767})
	apply(jsEvent{Type: eventAxis, Number: axisRightY, Value: -32768})
	d := peek(ctrl, true, 5)
	test.ExpectEquality(t, d.RX, uint8(255))
	test.ExpectEquality(t, d.RY, uint8(0))
	test.ExpectEquality(t, d.Frame, uint64(5))

	// analog sampling disabled
	d = peek(ctrl, false, 6)
	test.ExpectEquality(t, d.RX, uint8(127))
	test.ExpectEquality(t, d.RY, uint8(127))
}
