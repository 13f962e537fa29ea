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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. Unlike fmt.Errorf() the formatting pattern is kept with
// the error so that it can be used to identify the error later:
//
//	err := curated.Errorf("joydev: %s: no such device", path)
//
//	if curated.Is(err, "joydev: %s: no such device") {
//		fmt.Println("try another device")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. In the following, Is() would fail because the outer
// error was created with a different pattern, but Has() succeeds.
//
//	e := curated.Errorf(recorder.MalformedLine, 12, "too few fields")
//	f := curated.Errorf("playback: %v", e)
//
//	curated.Has(f, recorder.MalformedLine) // true
//	curated.Is(f, recorder.MalformedLine)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of the difference as being 'expected' and
// 'unexpected' errors.
//
// The Error() implementation normalises the error chain so that it does not
// contain duplicate adjacent parts. This alleviates the problem of when and
// how to wrap errors: both of the following print "sdlpad: no controller"
//
//	curated.Errorf("sdlpad: %v", curated.Errorf("sdlpad: no controller"))
//	curated.Errorf("sdlpad: no controller")
//
// Chains are composed of parts separated by the sub-string ": ".
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that returns them.
package curated
