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

package sampler

import (
	"fmt"
	"strings"
)

// Buttons is a bitmask of the digital inputs of the controller.
type Buttons uint32

// List of button bits. The bit positions are those of the console's
// controller driver.
const (
	Select   Buttons = 0x00000001
	Start    Buttons = 0x00000008
	Up       Buttons = 0x00000010
	Right    Buttons = 0x00000020
	Down     Buttons = 0x00000040
	Left     Buttons = 0x00000080
	LTrigger Buttons = 0x00000100
	RTrigger Buttons = 0x00000200
	Triangle Buttons = 0x00001000
	Circle   Buttons = 0x00002000
	Cross    Buttons = 0x00004000
	Square   Buttons = 0x00008000
)

// names of each button bit in the order they are printed by String().
var buttonNames = []struct {
	bit  Buttons
	name string
}{
	{Up, "UP"}, {Down, "DOWN"}, {Left, "LEFT"}, {Right, "RIGHT"},
	{Triangle, "TRIANGLE"}, {Circle, "CIRCLE"}, {Cross, "CROSS"}, {Square, "SQUARE"},
	{LTrigger, "L"}, {RTrigger, "R"}, {Start, "START"}, {Select, "SELECT"},
}

// Has returns true if every bit in b is set.
func (bt Buttons) Has(b Buttons) bool {
	return b != 0 && bt&b == b
}

func (bt Buttons) String() string {
	if bt == 0 {
		return "-"
	}
	s := make([]string, 0, len(buttonNames))
	for _, n := range buttonNames {
		if bt&n.bit == n.bit {
			s = append(s, n.name)
		}
	}
	if len(s) == 0 {
		return fmt.Sprintf("%#x", uint32(bt))
	}
	return strings.Join(s, "|")
}

// StickNeutral is the at-rest value of an analog stick axis.
const StickNeutral = 127

// ControllerData is a single snapshot of the controller.
type ControllerData struct {
	// sequence number of the snapshot as assigned by the sampler. zero if
	// the sampler does not count snapshots
	Frame uint64

	Buttons Buttons

	// analog sticks. each axis is in the range 0 to 255. left and up are
	// the low values
	LX, LY uint8
	RX, RY uint8
}

// Neutral returns the controller at rest: no buttons and both sticks
// centred.
func Neutral() ControllerData {
	return ControllerData{
		LX: StickNeutral, LY: StickNeutral,
		RX: StickNeutral, RY: StickNeutral,
	}
}

func (c ControllerData) String() string {
	return fmt.Sprintf("%s L(%d,%d) R(%d,%d)", c.Buttons, c.LX, c.LY, c.RX, c.RY)
}
