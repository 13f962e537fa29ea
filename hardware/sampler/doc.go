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

// Package sampler defines the boundary between the input tracker and the
// hardware that produces controller and touch panel snapshots.
//
// A Sampler is asked for the most recent snapshot and must answer
// immediately. It never waits for new hardware data. Implementations of the
// Sampler interface can be found in the sub-packages: scripted (programmable
// snapshots, for tests and playback), sdlpad (SDL game controllers and touch
// devices), joydev (Linux joystick devices), termpad (terminal keyboard) and
// ebitenpad (ebiten gamepads, touch and mouse).
//
// The layout of the Buttons bitmask and the dimensions of the touch panels
// follow the handheld console the tracker was designed for. Backends for other
// hardware translate their native input into this layout.
package sampler
