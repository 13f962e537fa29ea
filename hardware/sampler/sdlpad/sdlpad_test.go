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

package sdlpad

import (
	"testing"

	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/test"
	"github.com/jetsetilly/vitainput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// a sampler that has not initialised SDL. events are handled directly
func newTestSampler() *Sampler {
	return &Sampler{
		ctrl:         userinput.NewControllers(0),
		touchDevices: []sdl.TouchID{11, 22},
	}
}

func TestPadButtons(t *testing.T) {
	expected := map[sdl.GameControllerButton]sampler.Buttons{
		sdl.CONTROLLER_BUTTON_A:             sampler.Cross,
		sdl.CONTROLLER_BUTTON_B:             sampler.Circle,
		sdl.CONTROLLER_BUTTON_X:             sampler.Square,
		sdl.CONTROLLER_BUTTON_Y:             sampler.Triangle,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  sampler.LTrigger,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: sampler.RTrigger,
		sdl.CONTROLLER_BUTTON_BACK:          sampler.Select,
		sdl.CONTROLLER_BUTTON_START:         sampler.Start,
		sdl.CONTROLLER_BUTTON_DPAD_UP:       sampler.Up,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:     sampler.Down,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:     sampler.Left,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    sampler.Right,
	}
	test.ExpectEquality(t, len(padButtons), len(expected))

	smp := newTestSampler()
	for b, bit := range expected {
		smp.handleEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(b), State: sdl.PRESSED})
		test.ExpectEquality(t, smp.ctrl.Controller().Buttons, bit, b)

		smp.handleEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Button: uint8(b), State: sdl.RELEASED})
		test.ExpectEquality(t, smp.ctrl.Controller().Buttons, sampler.Buttons(0), b)
	}

	// buttons with no console equivalent are ignored
	smp.handleEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_GUIDE), State: sdl.PRESSED})
	test.ExpectEquality(t, smp.ctrl.Controller().Buttons, sampler.Buttons(0))
}

func TestTouchPort(t *testing.T) {
	smp := newTestSampler()

	port, ok := smp.touchPort(11)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, port, sampler.PortFront)

	port, ok = smp.touchPort(22)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, port, sampler.PortBack)

	_, ok = smp.touchPort(33)
	test.ExpectFailure(t, ok)

	smp.touchDevices = nil
	_, ok = smp.touchPort(11)
	test.ExpectFailure(t, ok)
}

func TestTouchEvents(t *testing.T) {
	smp := newTestSampler()
	test.DemandSuccess(t, smp.SetTouchPort(sampler.PortBack, true, false))

	finger := func(device sdl.TouchID, id sdl.FingerID, typ uint32) {
		smp.handleEvent(&sdl.TouchFingerEvent{Type: typ, TouchID: device, FingerID: id, X: 0.5, Y: 0.25})
	}

	finger(22, 1, sdl.FINGERDOWN)
	finger(33, 1, sdl.FINGERDOWN)

	td, err := smp.PeekTouch(sampler.PortBack)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, td.ReportNum, 1)
	test.ExpectEquality(t, td.Report[0].X, uint16(960))
	test.ExpectEquality(t, td.Report[0].Y, uint16(272))

	// the front port is not enabled
	finger(11, 1, sdl.FINGERDOWN)
	td, err = smp.PeekTouch(sampler.PortFront)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, td.ReportNum, 0)

	// no more contacts than the back panel can report
	for i := range 5 {
		finger(22, sdl.FingerID(i+2), sdl.FINGERDOWN)
	}
	td, _ = smp.PeekTouch(sampler.PortBack)
	test.ExpectEquality(t, td.ReportNum, 4)

	finger(22, 1, sdl.FINGERUP)
	td, _ = smp.PeekTouch(sampler.PortBack)
	test.ExpectEquality(t, td.ReportNum, 4)
	test.ExpectEquality(t, td.Report[0].X, uint16(960))

	_, err = smp.PeekTouch(sampler.NumTouchPorts)
	test.ExpectFailure(t, err)
}
