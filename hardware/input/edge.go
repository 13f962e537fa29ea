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

// Edge tracks a boolean signal from one frame to the next. It reports the
// frame on which the signal became true (Pressed) or false (Released) and the
// number of consecutive frames the signal has been true (Hold).
//
// The zero value is a signal that has never been active.
type Edge struct {
	was  bool
	now  bool
	hold int
}

// Update the edge with the state of the signal for the new frame.
func (e *Edge) Update(active bool) {
	e.was = e.now
	e.now = active
	if active {
		e.hold++
	} else {
		e.hold = 0
	}
}

// Reset the edge to the zero state.
func (e *Edge) Reset() {
	*e = Edge{}
}

// Pressed is true if the signal became active this frame.
func (e Edge) Pressed() bool {
	return e.now && !e.was
}

// Down is true if the signal is active this frame.
func (e Edge) Down() bool {
	return e.now
}

// Released is true if the signal became inactive this frame.
func (e Edge) Released() bool {
	return !e.now && e.was
}

// Hold returns the number of consecutive frames the signal has been active,
// including this frame. Zero if the signal is not active.
func (e Edge) Hold() int {
	return e.hold
}
