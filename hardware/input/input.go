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
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/logger"
)

// Input tracks the state of every logical Button, the analog sticks and the
// touch panels. It should be created with NewInput().
type Input struct {
	sampler sampler.Sampler

	initialised bool

	// the snapshot taken by the most recent Update()
	snapshot Snapshot

	buttons [NumButtons]Edge

	// number of calls to Update() since the state was last zeroed
	frame int

	recorder FrameRecorder

	// log permission for per-frame sampler failures. the first failure is
	// always logged
	verbose        logger.Verbose
	peekFailLogged bool
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(s sampler.Sampler) *Input {
	return &Input{
		sampler: s,
	}
}

// SetVerbose changes whether every sampler failure is logged rather than
// just the first in a sequence of failures.
func (inp *Input) SetVerbose(verbose bool) {
	inp.verbose.Enabled = verbose
}

// Init is the same as InitAdvanced() with analog sampling and front touch
// enabled and back touch disabled.
func (inp *Input) Init() bool {
	return inp.InitAdvanced(true, true, false)
}

// InitAdvanced zeroes all state and configures the sampler. Returns false
// without doing anything if Input is already initialised.
//
// Configuration failures are logged but do not prevent initialisation. The
// sampler will still be asked for snapshots.
func (inp *Input) InitAdvanced(analog bool, front bool, back bool) bool {
	if inp.initialised {
		return false
	}

	inp.Clear()

	if err := inp.sampler.SetAnalogMode(analog); err != nil {
		logger.Logf(logger.Allow, "input", "analog mode: %v", err)
	}
	if err := inp.sampler.SetTouchPort(sampler.PortFront, front, false); err != nil {
		logger.Logf(logger.Allow, "input", "%s touch: %v", sampler.PortFront, err)
	}
	if err := inp.sampler.SetTouchPort(sampler.PortBack, back, false); err != nil {
		logger.Logf(logger.Allow, "input", "%s touch: %v", sampler.PortBack, err)
	}

	inp.initialised = true
	logger.Logf(logger.Allow, "input", "initialised (analog=%v front=%v back=%v)", analog, front, back)

	return true
}

// Fini zeroes all state. Returns false without doing anything if Input is not
// initialised.
func (inp *Input) Fini() bool {
	if !inp.initialised {
		return false
	}

	inp.Clear()
	inp.initialised = false
	logger.Log(logger.Allow, "input", "finalised")

	return true
}

// Initialised returns true if Init() or InitAdvanced() has been called
// without a subsequent call to Fini().
func (inp *Input) Initialised() bool {
	return inp.initialised
}

// Clear zeroes the button, analog and touch state. The initialisation state
// is not changed.
func (inp *Input) Clear() {
	inp.snapshot = Snapshot{}
	for i := range inp.buttons {
		inp.buttons[i].Reset()
	}
	inp.frame = 0
}

// Frame returns the number of calls to Update() since the state was last
// zeroed.
func (inp *Input) Frame() int {
	return inp.frame
}

// Snapshot returns a copy of the hardware samples taken by the most recent
// call to Update().
func (inp *Input) Snapshot() Snapshot {
	return inp.snapshot
}

// Update takes a new snapshot from the sampler and updates every logical
// button. It should be called once per frame.
//
// A sampler failure is treated as a snapshot with no input.
func (inp *Input) Update() {
	var snap Snapshot
	var failed bool
	var err error

	snap.Controller, err = inp.sampler.PeekController()
	if err != nil {
		snap.Controller = sampler.ControllerData{}
		inp.peekFailed(err)
		failed = true
	}

	for port := range sampler.NumTouchPorts {
		snap.Touch[port], err = inp.sampler.PeekTouch(port)
		if err != nil {
			snap.Touch[port] = sampler.TouchData{}
			inp.peekFailed(err)
			failed = true
		}

		// a panel never reports more contacts than its capacity
		td := &snap.Touch[port]
		td.ReportNum = max(0, min(td.ReportNum, touchCapacity[port]))
	}

	if !failed {
		inp.peekFailLogged = false
	}

	// the snapshot is complete before any button is updated. every source
	// sees the same snapshot
	inp.snapshot = snap
	for b, src := range buttonSources {
		if src != nil {
			inp.buttons[b].Update(src(&inp.snapshot))
		}
	}

	inp.frame++

	if inp.recorder != nil {
		if err := inp.recorder.RecordFrame(inp.frame, inp.snapshot); err != nil {
			logger.Logf(logger.Allow, "input", "recorder detached: %v", err)
			inp.recorder = nil
		}
	}
}

func (inp *Input) peekFailed(err error) {
	if !inp.peekFailLogged {
		logger.Log(logger.Allow, "input", err)
		inp.peekFailLogged = true
		return
	}
	logger.Log(&inp.verbose, "input", err)
}
