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

package recorder

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

type playbackEntry struct {
	frame int
	snap  input.Snapshot

	// the line in the transcript the entry appears
	line int
}

// Playback replays the snapshots of a previously recorded transcript. It
// implements the sampler.Sampler interface.
//
// Snapshots are replayed exactly as recorded. The configuration requested by
// the tracker does not filter the recorded data.
type Playback struct {
	transcript string

	// creation time as found in the transcript header
	Created string

	sequence []playbackEntry
	seqCt    int

	// the entry returned by the most recent PeekController()
	current *playbackEntry

	// configuration requested by the tracker
	AnalogMode bool
	Ports      [sampler.NumTouchPorts]bool
}

// NewPlayback is the preferred method of implementation for the Playback type.
// The entire transcript is read and validated.
func NewPlayback(transcript string) (*Playback, error) {
	data, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	version, err := checkHeader(lines)
	if err != nil {
		return nil, err
	}

	plb := &Playback{
		transcript: transcript,
		Created:    strings.TrimPrefix(lines[lineCreated], createdPrefix),
	}

	prev := 0
	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		frame, snap, err := decodeFrame(lines[i], version)
		if err != nil {
			return nil, curated.Errorf(MalformedLine, i+1, err)
		}
		if frame <= prev {
			return nil, curated.Errorf(NonSequentialLog, i+1, frame, prev)
		}
		prev = frame

		plb.sequence = append(plb.sequence, playbackEntry{
			frame: frame,
			snap:  snap,
			line:  i + 1,
		})
	}

	return plb, nil
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%s %d/%d", plb.transcript, plb.seqCt, len(plb.sequence))
}

// Len returns the number of frames in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// Ended returns true if every frame in the transcript has been replayed.
func (plb *Playback) Ended() bool {
	return plb.seqCt >= len(plb.sequence)
}

// RecordedFrame returns the frame number, as recorded in the transcript, of
// the most recently replayed snapshot. Returns false if nothing has been
// replayed or if the transcript has ended.
func (plb *Playback) RecordedFrame() (int, bool) {
	if plb.current == nil {
		return 0, false
	}
	return plb.current.frame, true
}

// SetAnalogMode implements the sampler.Sampler interface.
func (plb *Playback) SetAnalogMode(enabled bool) error {
	plb.AnalogMode = enabled
	return nil
}

// SetTouchPort implements the sampler.Sampler interface.
func (plb *Playback) SetTouchPort(port sampler.TouchPort, enabled bool, _ bool) error {
	if !port.Valid() {
		return curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	plb.Ports[port] = enabled
	return nil
}

// PeekController implements the sampler.Sampler interface. After the end of
// the transcript the controller is at rest.
func (plb *Playback) PeekController() (sampler.ControllerData, error) {
	if plb.Ended() {
		plb.current = nil
		return sampler.Neutral(), nil
	}

	plb.current = &plb.sequence[plb.seqCt]
	plb.seqCt++

	c := plb.current.snap.Controller
	c.Frame = uint64(plb.current.frame)
	return c, nil
}

// PeekTouch implements the sampler.Sampler interface. Returns the touch data
// of the snapshot most recently returned by PeekController().
func (plb *Playback) PeekTouch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	if plb.current == nil {
		return sampler.TouchData{}, nil
	}
	td := plb.current.snap.Touch[port]
	td.Frame = uint64(plb.current.frame)
	return td, nil
}
