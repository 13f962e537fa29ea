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

// Package input tracks the state of the controller and touch panels from one
// frame to the next. An instance of Input is created with NewInput() and a
// sampler.Sampler that supplies the raw hardware snapshots.
//
// The Update() function should be called exactly once per frame. It pulls a
// fresh snapshot from the sampler and updates the edge tracker of every
// logical Button. Between calls to Update() any number of queries can be
// made. Queries never change state.
//
//	inp := input.NewInput(sdlpad)
//	inp.Init()
//	defer inp.Fini()
//
//	for {
//		inp.Update()
//		if inp.Pressed(input.Cross) {
//			jump()
//		}
//		if x, y, ok := inp.TouchFrontFirst(); ok {
//			aim(x, y)
//		}
//	}
//
// Calling Update() more than once per frame will cause spurious pressed and
// released edges. Not calling Update() at all means the state is stale: no
// new edges are reported and hold durations are frozen. Neither case is
// guarded against.
//
// There is no internal locking. Update() and the queries should be called from
// the same goroutine, or access should be serialised by the caller.
//
// Invalid arguments to query functions (an unknown Button, Stick or
// TouchPort, or a report index out of range) never cause a panic or an error.
// A neutral value is returned along with false where the function has a
// success result.
package input
