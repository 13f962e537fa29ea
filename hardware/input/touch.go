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
)

// The number of contacts each touch panel can report. These are smaller than
// the capacity of the report array in sampler.TouchData.
const (
	FrontMaxReport = 6
	BackMaxReport  = 4
)

var touchCapacity = [sampler.NumTouchPorts]int{
	sampler.PortFront: FrontMaxReport,
	sampler.PortBack:  BackMaxReport,
}

// TouchCapacity returns the number of contacts the touch panel can report.
// Zero for an unknown port.
func TouchCapacity(port sampler.TouchPort) int {
	if !port.Valid() {
		return 0
	}
	return touchCapacity[port]
}

// Dimensions of the logical screen space that touch coordinates are reported
// in. Exactly half the native panel resolution.
const (
	ScreenWidth  = sampler.PanelWidth / 2
	ScreenHeight = sampler.PanelHeight / 2
)

// TouchReportCount returns the number of contacts reported by the touch panel
// this frame. Zero for an unknown port.
func (inp *Input) TouchReportCount(port sampler.TouchPort) int {
	if !port.Valid() {
		return 0
	}
	return inp.snapshot.Touch[port].ReportNum
}

// TouchReport returns the position of a contact in screen space. Returns zero
// and false if the port is unknown, if the index is outside of the panel's
// capacity, or if the panel reported no contacts this frame.
//
// Note that the index is checked against the capacity of the panel and not
// against the number of contacts reported this frame. When the panel reports
// at least one contact, an index beyond TouchReportCount() but within
// TouchCapacity() returns the content of an unused report slot.
func (inp *Input) TouchReport(port sampler.TouchPort, index int) (x int, y int, ok bool) {
	if !port.Valid() || index < 0 || index >= touchCapacity[port] {
		return 0, 0, false
	}

	td := &inp.snapshot.Touch[port]
	if td.ReportNum == 0 {
		return 0, 0, false
	}

	r := td.Report[index]
	return int(r.X) / 2, int(r.Y) / 2, true
}

// TouchFrontFirst is a convenience function returning the first contact on
// the front panel.
func (inp *Input) TouchFrontFirst() (x int, y int, ok bool) {
	return inp.TouchReport(sampler.PortFront, 0)
}

// TouchBackFirst is a convenience function returning the first contact on
// the back panel.
func (inp *Input) TouchBackFirst() (x int, y int, ok bool) {
	return inp.TouchReport(sampler.PortBack, 0)
}
