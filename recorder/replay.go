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
	"io"
	"strings"

	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

// Summary of a replayed transcript.
type Summary struct {
	Frames int

	// number of times each button was pressed
	Presses [input.NumButtons]int

	// the longest hold duration of each button
	LongestHold [input.NumButtons]int

	// the largest number of contacts reported by each touch panel in a single
	// frame
	MaxContacts [sampler.NumTouchPorts]int
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d frames\n", s.Frames)
	for _, btn := range input.Buttons() {
		if s.Presses[btn] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %d presses, longest hold %d frames\n", btn, s.Presses[btn], s.LongestHold[btn])
	}
	for port := range sampler.NumTouchPorts {
		if s.MaxContacts[port] > 0 {
			fmt.Fprintf(&b, "%s touch: at most %d contacts\n", port, s.MaxContacts[port])
		}
	}
	return b.String()
}

// Replay runs the playback through a new tracker, with every touch panel
// enabled, and writes the button edges of each frame to output. Lines have
// the form:
//
//	frame 12: CROSS pressed
//
// Frame numbers are those of the transcript.
func Replay(plb *Playback, output io.Writer) (Summary, error) {
	var sum Summary

	inp := input.NewInput(plb)
	inp.InitAdvanced(true, true, true)
	defer inp.Fini()

	for !plb.Ended() {
		inp.Update()
		sum.Frames++

		frame, _ := plb.RecordedFrame()

		for _, b := range input.Buttons() {
			var edge string
			switch {
			case inp.Pressed(b):
				edge = "pressed"
				sum.Presses[b]++
			case inp.Released(b):
				edge = "released"
			}
			sum.LongestHold[b] = max(sum.LongestHold[b], inp.HoldDuration(b))

			if edge != "" {
				if _, err := fmt.Fprintf(output, "frame %d: %s %s\n", frame, b, edge); err != nil {
					return sum, err
				}
			}
		}

		for port := range sampler.NumTouchPorts {
			sum.MaxContacts[port] = max(sum.MaxContacts[port], inp.TouchReportCount(port))
		}
	}

	return sum, nil
}
