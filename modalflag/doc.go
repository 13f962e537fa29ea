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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of supplying flags for each mode.
//
// A Modes instance is initialised with the argument list and the list of
// modes. The first mode in the list is the default mode and is selected if the
// first argument after the flags is not a listed mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("MONITOR", "RECORD", "PLAYBACK", "WINDOW")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RECORD":
//		...
//	}
//
// Once the mode has been selected, a new set of flags for that mode is
// prepared with another call to NewMode() and the remaining arguments parsed
// with another call to Parse().
//
//	md.NewMode()
//	fps := md.AddInt("fps", 60, "update frequency")
//	p, err = md.Parse()
//
// Flags are never mixed between modes. Flags that appear before the mode name
// belong to the top level, flags that appear after it belong to the mode.
//
// Help is printed to the Output writer when the -help flag is found. The help
// message lists the flags and sub-modes of the current level and any text
// supplied with AdditionalHelp().
//
// Mode names are case insensitive. The Mode() and Path() functions always
// report them in upper case.
package modalflag
