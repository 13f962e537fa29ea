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

// Package scripted implements a sampler.Sampler whose snapshots are supplied
// by the program rather than by hardware. Frames are queued with Push() and
// consumed one per call to PeekController(). When the queue is empty the
// frame set with Hold() is returned.
//
// PeekController() advances to the next frame. PeekTouch() returns the touch
// snapshots of the frame most recently advanced to. This matches the order in
// which the input tracker peeks the sampler during an update.
package scripted

import (
	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

// Frame is a complete set of snapshots for a single update.
type Frame struct {
	Controller sampler.ControllerData
	Touch      [sampler.NumTouchPorts]sampler.TouchData
}

// Buttons is a convenience function returning a Frame with the specified
// buttons held and both sticks at rest.
func Buttons(b sampler.Buttons) Frame {
	f := Frame{Controller: sampler.Neutral()}
	f.Controller.Buttons = b
	return f
}

// Touch is a convenience function returning a TouchData snapshot with the
// specified contacts. Each point is an X, Y pair in panel coordinates.
func Touch(points ...[2]uint16) sampler.TouchData {
	var td sampler.TouchData
	for _, p := range points {
		td.Append(p[0], p[1])
	}
	return td
}

// PortConfig records the most recent configuration of a touch port.
type PortConfig struct {
	Enabled bool
	Force   bool
}

// Sampler is the scripted implementation of sampler.Sampler.
type Sampler struct {
	queue   []Frame
	held    Frame
	current Frame

	// number of frames advanced to
	count uint64

	// the configuration most recently requested by the tracker
	AnalogMode bool
	Ports      [sampler.NumTouchPorts]PortConfig

	// number of calls to the configuration functions. useful for checking
	// that configuration happens only when expected
	Configured int

	// error to return from the next call to PeekController()
	failNext error
}

// NewSampler is the preferred method of initialisation for the Sampler type.
// The held frame is a neutral controller with no touches.
func NewSampler() *Sampler {
	return &Sampler{
		held:    Frame{Controller: sampler.Neutral()},
		current: Frame{Controller: sampler.Neutral()},
	}
}

// Push adds frames to the end of the queue.
func (s *Sampler) Push(frames ...Frame) {
	s.queue = append(s.queue, frames...)
}

// Hold sets the frame that is returned whenever the queue is empty.
func (s *Sampler) Hold(f Frame) {
	s.held = f
}

// Pending returns the number of frames in the queue.
func (s *Sampler) Pending() int {
	return len(s.queue)
}

// Count returns the number of frames that have been advanced to.
func (s *Sampler) Count() uint64 {
	return s.count
}

// FailNext causes the next call to PeekController() to return the error.
func (s *Sampler) FailNext(err error) {
	s.failNext = err
}

// SetAnalogMode implements the sampler.Sampler interface.
func (s *Sampler) SetAnalogMode(enabled bool) error {
	s.AnalogMode = enabled
	s.Configured++
	return nil
}

// SetTouchPort implements the sampler.Sampler interface.
func (s *Sampler) SetTouchPort(port sampler.TouchPort, enabled bool, force bool) error {
	if !port.Valid() {
		return curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	s.Ports[port] = PortConfig{Enabled: enabled, Force: force}
	s.Configured++
	return nil
}

// PeekController implements the sampler.Sampler interface.
func (s *Sampler) PeekController() (sampler.ControllerData, error) {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		s.current = Frame{}
		return sampler.ControllerData{}, curated.Errorf("scripted: %v", err)
	}

	if len(s.queue) > 0 {
		s.current = s.queue[0]
		s.queue = s.queue[1:]
	} else {
		s.current = s.held
	}

	s.count++
	s.current.Controller.Frame = s.count

	return s.current.Controller, nil
}

// PeekTouch implements the sampler.Sampler interface. Touch ports that have
// not been enabled with SetTouchPort() report no contacts.
func (s *Sampler) PeekTouch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	if !s.Ports[port].Enabled {
		return sampler.TouchData{Frame: s.count}, nil
	}
	td := s.current.Touch[port]
	td.Frame = s.count
	return td, nil
}
