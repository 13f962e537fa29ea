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

package userinput

import (
	"math"

	"github.com/jetsetilly/vitainput/hardware/sampler"
)

// Deadzone is the proportion of an axis, from the centre, that is treated as
// the neutral position. Values are clamped to the range 0.0 to 1.0.
type Deadzone float64

func (d Deadzone) clamp() float64 {
	return math.Max(0, math.Min(float64(d), 1))
}

// AxisFloat converts an axis in the range -1.0 to 1.0 to a byte. Values
// within the deadzone are reduced to the neutral position. Values outside
// the deadzone are rescaled so that the full range of the byte remains
// reachable.
func AxisFloat(v float64, d Deadzone) uint8 {
	v = math.Max(-1, math.Min(v, 1))

	dz := d.clamp()
	if dz >= 1 {
		return sampler.StickNeutral
	}

	m := math.Abs(v)
	if m <= dz {
		return sampler.StickNeutral
	}
	m = (m - dz) / (1 - dz)

	if v < 0 {
		return uint8(math.Round(sampler.StickNeutral - m*sampler.StickNeutral))
	}
	return uint8(math.Round(sampler.StickNeutral + m*(255-sampler.StickNeutral)))
}

// AxisInt16 converts an axis in the range of an int16 to a byte. See
// AxisFloat() for how the deadzone is applied.
func AxisInt16(v int16, d Deadzone) uint8 {
	if v < 0 {
		return AxisFloat(float64(v)/32768, d)
	}
	return AxisFloat(float64(v)/32767, d)
}

// TouchPosition converts a normalised touch position to panel coordinates.
func TouchPosition(x, y float64) (uint16, uint16) {
	return sampler.ClampToPanel(int(x*sampler.PanelWidth), int(y*sampler.PanelHeight))
}
