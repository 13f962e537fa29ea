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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. Both bool and error values are understood. It is
// worth describing how nil is handled because it is not obvious: nil is
// considered a success and so causes ExpectFailure to fail and ExpectSuccess
// to succeed. This mirrors how errors usually work (nil to indicate no
// error).
//
// The Demand* variants stop the test immediately rather than reporting and
// continuing. Use them when the rest of the test makes no sense after a
// failure, for example when a sampler could not be created.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
