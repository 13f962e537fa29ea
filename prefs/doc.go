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

// Package prefs facilitates the storage of preferential values in the
// vitainput system. Preferences are typed values (Bool, Int, Float, String and
// Generic) that can be safely read from one goroutine while being set in
// another.
//
// A Disk collates preference values and associates each with a key. The
// values can then be saved to and loaded from a file. A preferences file can
// be shared by more than one Disk instance. Saving one Disk does not clobber
// the entries written by another.
//
// Values loaded from disk can be overridden on the command line with the
// command line stack. See PushCommandLineStack().
//
// Preference values have optional hooks that are called before and after the
// value changes. The pre hook can reject a new value by returning an error.
package prefs
