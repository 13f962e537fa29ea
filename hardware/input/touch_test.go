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

package input_test

import (
	"testing"

	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/hardware/sampler/scripted"
	"github.com/jetsetilly/vitainput/test"
)

func TestTouchCapacity(t *testing.T) {
	test.ExpectEquality(t, input.TouchCapacity(sampler.PortFront), 6)
	test.ExpectEquality(t, input.TouchCapacity(sampler.PortBack), 4)
	test.ExpectEquality(t, input.TouchCapacity(sampler.NumTouchPorts), 0)
	test.ExpectEquality(t, input.ScreenWidth, 960)
	test.ExpectEquality(t, input.ScreenHeight, 544)
}

func TestTouchReport(t *testing.T) {
	s := scripted.NewSampler()
	inp := input.NewInput(s)
	inp.InitAdvanced(true, true, true)

	f := scripted.Buttons(0)
	f.Touch[sampler.PortFront] = scripted.Touch([2]uint16{100, 200}, [2]uint16{1919, 1087})
	f.Touch[sampler.PortBack] = scripted.Touch([2]uint16{51, 33})
	s.Push(f)
	inp.Update()

	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortFront), 2)
	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortBack), 1)
	test.ExpectEquality(t, inp.TouchReportCount(-1), 0)
	test.ExpectSuccess(t, inp.Down(input.TouchFrontPress))
	test.ExpectSuccess(t, inp.Pressed(input.TouchBackPress))

	x, y, ok := inp.TouchFrontFirst()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 50)
	test.ExpectEquality(t, y, 100)

	x, y, ok = inp.TouchReport(sampler.PortFront, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 959)
	test.ExpectEquality(t, y, 543)

	// odd coordinates are truncated
	x, y, ok = inp.TouchBackFirst()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 25)
	test.ExpectEquality(t, y, 16)

	// index within capacity but beyond the live count returns an unused slot
	x, y, ok = inp.TouchReport(sampler.PortFront, 5)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)

	// index beyond capacity
	_, _, ok = inp.TouchReport(sampler.PortFront, 6)
	test.ExpectFailure(t, ok)
	_, _, ok = inp.TouchReport(sampler.PortBack, 4)
	test.ExpectFailure(t, ok)
	_, _, ok = inp.TouchReport(sampler.PortFront, -1)
	test.ExpectFailure(t, ok)
	_, _, ok = inp.TouchReport(sampler.NumTouchPorts, 0)
	test.ExpectFailure(t, ok)

	// no contacts on the next frame
	inp.Update()
	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortFront), 0)
	test.ExpectSuccess(t, inp.Released(input.TouchFrontPress))
	_, _, ok = inp.TouchFrontFirst()
	test.ExpectFailure(t, ok)
	_, _, ok = inp.TouchReport(sampler.PortFront, 3)
	test.ExpectFailure(t, ok)
}

func TestTouchDisabled(t *testing.T) {
	s := scripted.NewSampler()
	f := scripted.Buttons(0)
	f.Touch[sampler.PortBack] = scripted.Touch([2]uint16{10, 10})
	s.Hold(f)

	inp := input.NewInput(s)
	inp.Init()
	inp.Update()

	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortBack), 0)
	test.ExpectFailure(t, inp.Down(input.TouchBackPress))
	_, _, ok := inp.TouchBackFirst()
	test.ExpectFailure(t, ok)
}

func TestTouchReportCountClamped(t *testing.T) {
	s := scripted.NewSampler()
	inp := input.NewInput(s)
	inp.InitAdvanced(true, true, true)

	f := scripted.Buttons(0)
	f.Touch[sampler.PortBack] = scripted.Touch(
		[2]uint16{10, 10}, [2]uint16{20, 20}, [2]uint16{30, 30},
		[2]uint16{40, 40}, [2]uint16{50, 50},
	)
	f.Touch[sampler.PortFront] = scripted.Touch(
		[2]uint16{2, 2}, [2]uint16{4, 4}, [2]uint16{6, 6}, [2]uint16{8, 8},
		[2]uint16{10, 10}, [2]uint16{12, 12}, [2]uint16{14, 14}, [2]uint16{16, 16},
	)
	s.Push(f)
	inp.Update()

	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortBack), 4)
	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortFront), 6)
	test.ExpectEquality(t, inp.Snapshot().Touch[sampler.PortBack].ReportNum, 4)

	// the last counted contact is always reportable
	x, y, ok := inp.TouchReport(sampler.PortBack, inp.TouchReportCount(sampler.PortBack)-1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 20)
	test.ExpectEquality(t, y, 20)

	x, y, ok = inp.TouchReport(sampler.PortFront, inp.TouchReportCount(sampler.PortFront)-1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 6)
	test.ExpectEquality(t, y, 6)

	// a malformed negative count is treated as no contacts
	f = scripted.Buttons(0)
	f.Touch[sampler.PortBack].ReportNum = -3
	s.Push(f)
	inp.Update()
	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortBack), 0)
	test.ExpectSuccess(t, inp.Released(input.TouchBackPress))
}
