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
	"errors"
	"testing"

	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/hardware/sampler/scripted"
	"github.com/jetsetilly/vitainput/test"
)

func TestInitFini(t *testing.T) {
	s := scripted.NewSampler()
	inp := input.NewInput(s)

	test.ExpectFailure(t, inp.Initialised())
	test.ExpectFailure(t, inp.Fini())

	test.ExpectSuccess(t, inp.Init())
	test.ExpectSuccess(t, inp.Initialised())
	test.ExpectEquality(t, s.Configured, 3)
	test.ExpectSuccess(t, s.AnalogMode)
	test.ExpectSuccess(t, s.Ports[sampler.PortFront].Enabled)
	test.ExpectFailure(t, s.Ports[sampler.PortBack].Enabled)
	test.ExpectFailure(t, s.Ports[sampler.PortFront].Force)

	// second initialisation does nothing
	test.ExpectFailure(t, inp.InitAdvanced(false, false, true))
	test.ExpectEquality(t, s.Configured, 3)
	test.ExpectSuccess(t, s.AnalogMode)

	test.ExpectSuccess(t, inp.Fini())
	test.ExpectFailure(t, inp.Initialised())
	test.ExpectFailure(t, inp.Fini())

	// initialisation after finalisation configures the sampler again
	test.ExpectSuccess(t, inp.InitAdvanced(false, false, true))
	test.ExpectEquality(t, s.Configured, 6)
	test.ExpectFailure(t, s.AnalogMode)
	test.ExpectSuccess(t, s.Ports[sampler.PortBack].Enabled)
}

func TestHoldSequence(t *testing.T) {
	s := scripted.NewSampler()
	inp := input.NewInput(s)
	inp.Init()

	for range 4 {
		s.Push(scripted.Buttons(sampler.Cross))
	}
	s.Push(scripted.Buttons(0))

	for i := 1; i <= 4; i++ {
		inp.Update()
		test.ExpectEquality(t, inp.Pressed(input.Cross), i == 1, i)
		test.ExpectSuccess(t, inp.Down(input.Cross), i)
		test.ExpectFailure(t, inp.Released(input.Cross), i)
		test.ExpectEquality(t, inp.HoldDuration(input.Cross), i, i)
	}

	inp.Update()
	test.ExpectFailure(t, inp.Pressed(input.Cross))
	test.ExpectFailure(t, inp.Down(input.Cross))
	test.ExpectSuccess(t, inp.Released(input.Cross))
	test.ExpectEquality(t, inp.HoldDuration(input.Cross), 0)

	// released is only true for one frame
	inp.Update()
	test.ExpectFailure(t, inp.Released(input.Cross))

	test.ExpectEquality(t, inp.Frame(), 6)
}

func TestButtonMapping(t *testing.T) {
	s := scripted.NewSampler()
	inp := input.NewInput(s)
	inp.Init()

	for _, b := range input.Buttons() {
		bit := b.Bit()
		if bit == 0 {
			continue
		}
		s.Push(scripted.Buttons(bit))
		inp.Update()

		for _, o := range input.Buttons() {
			test.ExpectEquality(t, inp.Down(o), o == b, b, o)
		}

		s.Push(scripted.Buttons(0))
		inp.Update()
	}

	test.ExpectEquality(t, input.L.Bit(), sampler.LTrigger)
	test.ExpectEquality(t, input.R.Bit(), sampler.RTrigger)
	test.ExpectEquality(t, input.TouchFrontPress.Bit(), sampler.Buttons(0))
}

func TestInvalidButton(t *testing.T) {
	s := scripted.NewSampler()
	s.Hold(scripted.Buttons(0xffff))
	inp := input.NewInput(s)
	inp.Init()
	inp.Update()

	for _, b := range []input.Button{input.NoButton, input.NumButtons, -1, 100} {
		test.ExpectFailure(t, inp.Pressed(b), b)
		test.ExpectFailure(t, inp.Down(b), b)
		test.ExpectFailure(t, inp.Released(b), b)
		test.ExpectEquality(t, inp.HoldDuration(b), 0, b)
	}
}

func TestClear(t *testing.T) {
	s := scripted.NewSampler()
	f := scripted.Buttons(sampler.Circle | sampler.Left)
	f.Controller.LX = 255
	f.Touch[sampler.PortFront] = scripted.Touch([2]uint16{100, 200})
	s.Hold(f)

	inp := input.NewInput(s)
	inp.Init()
	inp.Update()
	inp.Update()
	test.ExpectEquality(t, inp.HoldDuration(input.Circle), 2)
	test.ExpectSuccess(t, inp.Down(input.TouchFrontPress))

	inp.Clear()
	test.ExpectSuccess(t, inp.Initialised())
	test.ExpectEquality(t, inp.Frame(), 0)
	for _, b := range input.Buttons() {
		test.ExpectFailure(t, inp.Down(b), b)
		test.ExpectEquality(t, inp.HoldDuration(b), 0, b)
	}
	x, y, ok := inp.Analog(input.LeftStick)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	dx, dy := inp.DPad()
	test.ExpectEquality(t, dx, float32(0))
	test.ExpectEquality(t, dy, float32(0))
	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortFront), 0)

	// the held frame is seen as a new press after clearing
	inp.Update()
	test.ExpectSuccess(t, inp.Pressed(input.Circle))
	test.ExpectEquality(t, inp.HoldDuration(input.Circle), 1)
}

func TestUpdateBeforeInit(t *testing.T) {
	s := scripted.NewSampler()
	s.Hold(scripted.Buttons(sampler.Start))
	inp := input.NewInput(s)

	inp.Update()
	test.ExpectFailure(t, inp.Initialised())
	test.ExpectSuccess(t, inp.Down(input.Start))
	test.ExpectEquality(t, s.Configured, 0)
}

func TestPeekFailure(t *testing.T) {
	s := scripted.NewSampler()
	s.Hold(scripted.Buttons(sampler.Square))
	inp := input.NewInput(s)
	inp.Init()

	inp.Update()
	inp.Update()
	test.ExpectEquality(t, inp.HoldDuration(input.Square), 2)

	// a failed snapshot is treated as a snapshot with no input
	s.FailNext(errors.New("device unplugged"))
	inp.Update()
	test.ExpectFailure(t, inp.Down(input.Square))
	test.ExpectSuccess(t, inp.Released(input.Square))
	test.ExpectEquality(t, inp.Frame(), 3)

	inp.Update()
	test.ExpectSuccess(t, inp.Pressed(input.Square))
}

type frameCollector struct {
	frames  []int
	buttons []sampler.Buttons
	fail    error
}

func (c *frameCollector) RecordFrame(frame int, snap input.Snapshot) error {
	if c.fail != nil {
		return c.fail
	}
	c.frames = append(c.frames, frame)
	c.buttons = append(c.buttons, snap.Controller.Buttons)
	return nil
}

func TestRecorder(t *testing.T) {
	s := scripted.NewSampler()
	s.Push(scripted.Buttons(sampler.Up), scripted.Buttons(sampler.Down))
	inp := input.NewInput(s)
	inp.Init()

	var c frameCollector
	test.ExpectSuccess(t, inp.AttachRecorder(&c))
	test.ExpectFailure(t, inp.AttachRecorder(&c))
	test.ExpectFailure(t, inp.AttachRecorder(nil))
	test.ExpectSuccess(t, inp.Recording())

	inp.Update()
	inp.Update()
	test.ExpectEquality(t, len(c.frames), 2)
	test.ExpectEquality(t, c.frames[1], 2)
	test.ExpectEquality(t, c.buttons[0], sampler.Up)
	test.ExpectEquality(t, c.buttons[1], sampler.Down)

	// an error from the recorder detaches it
	c.fail = errors.New("disk full")
	inp.Update()
	test.ExpectFailure(t, inp.Recording())

	inp.DetachRecorder()
	test.ExpectFailure(t, inp.Recording())
}
