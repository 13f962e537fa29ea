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

import "fmt"

// TouchPort identifies one of the touch panels.
type TouchPort int

// List of valid TouchPort values.
const (
	PortFront TouchPort = iota
	PortBack
	NumTouchPorts
)

func (p TouchPort) String() string {
	switch p {
	case PortFront:
		return "front"
	case PortBack:
		return "back"
	}
	return fmt.Sprintf("port(%d)", int(p))
}

// Valid returns true if the port is one of the known touch panels.
func (p TouchPort) Valid() bool {
	return p >= PortFront && p < NumTouchPorts
}

// MaxReport is the capacity of the report array in a TouchData snapshot. The
// panels themselves report fewer contacts than this. See the per-port
// capacity constants in the input package.
const MaxReport = 8

// Native resolution of the touch panels. Coordinates in a TouchReport are in
// this space.
const (
	PanelWidth  = 1920
	PanelHeight = 1088
)

// TouchReport is a single contact point.
type TouchReport struct {
	ID    uint8
	Force uint8
	X, Y  uint16
}

// TouchData is a single snapshot of one touch panel.
type TouchData struct {
	// sequence number of the snapshot as assigned by the sampler
	Frame uint64

	// number of valid entries in Report
	ReportNum int

	Report [MaxReport]TouchReport
}

// Append adds a contact to the snapshot. Contacts beyond the capacity of the
// report array are ignored and false is returned.
func (td *TouchData) Append(x, y uint16) bool {
	if td.ReportNum < 0 || td.ReportNum >= MaxReport {
		return false
	}
	td.Report[td.ReportNum] = TouchReport{ID: uint8(td.ReportNum), X: x, Y: y}
	td.ReportNum++
	return true
}

// ClampToPanel limits a coordinate pair to the native panel dimensions.
func ClampToPanel(x, y int) (uint16, uint16) {
	x = max(0, min(x, PanelWidth-1))
	y = max(0, min(y, PanelHeight-1))
	return uint16(x), uint16(y)
}
