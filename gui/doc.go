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

// Package gui opens a window showing the state of the input tracker. The
// window is the size of the logical touch screen so mouse and touch positions
// map directly to touch panel coordinates.
package gui
