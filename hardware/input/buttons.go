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

// Button is a logical input. Most buttons correspond to a physical button on
// the controller but some are synthetic conditions. TouchFrontPress and
// TouchBackPress are active whenever the corresponding touch panel reports at
// least one contact.
type Button int

// List of valid Button values.
const (
	NoButton Button = iota

	Triangle
	Circle
	Cross
	Square

	Up
	Right
	Down
	Left

	Start
	Select

	L
	R

	TouchFrontPress
	TouchBackPress

	NumButtons
)

var buttonNames = [NumButtons]string{
	NoButton:        "NONE",
	Triangle:        "TRIANGLE",
	Circle:          "CIRCLE",
	Cross:           "CROSS",
	Square:          "SQUARE",
	Up:              "UP",
	Right:           "RIGHT",
	Down:            "DOWN",
	Left:            "LEFT",
	Start:           "START",
	Select:          "SELECT",
	L:               "L",
	R:               "R",
	TouchFrontPress: "TOUCH FRONT",
	TouchBackPress:  "TOUCH BACK",
}

func (b Button) String() string {
	if b < NoButton || b >= NumButtons {
		return fmt.Sprintf("button(%d)", int(b))
	}
	return buttonNames[b]
}

// Valid returns true if the button can be queried. NoButton is not valid.
func (b Button) Valid() bool {
	return b > NoButton && b < NumButtons
}

// Buttons returns a list of all valid buttons in order.
func Buttons() []Button {
	l := make([]Button, 0, NumButtons-1)
	for b := NoButton + 1; b < NumButtons; b++ {
		l = append(l, b)
	}
	return l
}

// Snapshot is the set of hardware samples taken during a single Update().
type Snapshot struct {
	Controller sampler.ControllerData
	Touch      [sampler.NumTouchPorts]sampler.TouchData
}

// Source decides whether a logical button is active in a snapshot.
type Source func(snap *Snapshot) bool

// BitSource returns a Source that is active when every bit in mask is set in
// the controller's button bitmask.
func BitSource(mask sampler.Buttons) Source {
	return func(snap *Snapshot) bool {
		return snap.Controller.Buttons.Has(mask)
	}
}

// TouchSource returns a Source that is active when the touch port has at
// least one contact.
func TouchSource(port sampler.TouchPort) Source {
	return func(snap *Snapshot) bool {
		return snap.Touch[port].ReportNum > 0
	}
}

// the controller bit for each logical button. synthetic buttons have no bit
var buttonBits = [NumButtons]sampler.Buttons{
	Triangle: sampler.Triangle,
	Circle:   sampler.Circle,
	Cross:    sampler.Cross,
	Square:   sampler.Square,
	Up:       sampler.Up,
	Right:    sampler.Right,
	Down:     sampler.Down,
	Left:     sampler.Left,
	Start:    sampler.Start,
	Select:   sampler.Select,
	L:        sampler.LTrigger,
	R:        sampler.RTrigger,
}

// the source of every logical button. NoButton has no source and is never
// updated
var buttonSources = [NumButtons]Source{
	Triangle:        BitSource(buttonBits[Triangle]),
	Circle:          BitSource(buttonBits[Circle]),
	Cross:           BitSource(buttonBits[Cross]),
	Square:          BitSource(buttonBits[Square]),
	Up:              BitSource(buttonBits[Up]),
	Right:           BitSource(buttonBits[Right]),
	Down:            BitSource(buttonBits[Down]),
	Left:            BitSource(buttonBits[Left]),
	Start:           BitSource(buttonBits[Start]),
	Select:          BitSource(buttonBits[Select]),
	L:               BitSource(buttonBits[L]),
	R:               BitSource(buttonBits[R]),
	TouchFrontPress: TouchSource(sampler.PortFront),
	TouchBackPress:  TouchSource(sampler.PortBack),
}

// Bit returns the controller bit for the button. Synthetic and invalid
// buttons return zero.
func (b Button) Bit() sampler.Buttons {
	if !b.Valid() {
		return 0
	}
	return buttonBits[b]
}

// Pressed returns true if the button became active this frame.
func (inp *Input) Pressed(b Button) bool {
	if !b.Valid() {
		return false
	}
	return inp.buttons[b].Pressed()
}

// Down returns true if the button is active this frame.
func (inp *Input) Down(b Button) bool {
	if !b.Valid() {
		return false
	}
	return inp.buttons[b].Down()
}

// Released returns true if the button became inactive this frame.
func (inp *Input) Released(b Button) bool {
	if !b.Valid() {
		return false
	}
	return inp.buttons[b].Released()
}

// HoldDuration returns the number of consecutive frames, including this one,
// that the button has been active.
func (inp *Input) HoldDuration(b Button) int {
	if !b.Valid() {
		return 0
	}
	return inp.buttons[b].Hold()
}
