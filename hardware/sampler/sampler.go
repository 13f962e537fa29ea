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

// Sampler is the interface to the controller and touch panel hardware.
type Sampler interface {
	// SetAnalogMode enables or disables sampling of the analog sticks. When
	// disabled the stick axes in ControllerData are undefined.
	SetAnalogMode(enabled bool) error

	// SetTouchPort starts or stops sampling of the specified touch panel and
	// enables or disables force (pressure) reporting.
	SetTouchPort(port TouchPort, enabled bool, force bool) error

	// PeekController returns the most recent controller snapshot. It must
	// not block.
	PeekController() (ControllerData, error)

	// PeekTouch returns the most recent snapshot of the specified touch
	// panel. It must not block.
	PeekTouch(port TouchPort) (TouchData, error)
}

// Closer is implemented by samplers that hold resources that should be
// released when the sampler is no longer needed.
type Closer interface {
	Close() error
}

// Sentinel error patterns that may be returned by Sampler implementations.
const (
	UnknownTouchPort = "sampler: unknown touch port (%d)"
	NotSupported     = "sampler: %s: not supported"
)
