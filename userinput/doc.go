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

// Package userinput handles input from the host hardware and translates it
// into controller and touch snapshots.
//
// It can be thought of as a translation layer between a sampler backend and
// the sampler package. Backends describe what happened on the host with an
// Event and the Controllers type accumulates the events into the state that
// is returned by the backend's peek functions. As such, this package hides
// the differences between SDL, the terminal and the joystick device while
// keeping the backends simple.
//
// The package also provides the axis conversion functions used by the
// backends and the Preferences type that collates the settings of the
// vitainput tool.
package userinput
