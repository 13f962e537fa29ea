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

package input

import (
	"github.com/jetsetilly/vitainput/curated"
)

// FrameRecorder receives the snapshot of every Update(). An error from
// RecordFrame() detaches the recorder.
type FrameRecorder interface {
	RecordFrame(frame int, snap Snapshot) error
}

// AttachRecorder adds a recorder. Only one recorder can be attached at a time.
func (inp *Input) AttachRecorder(r FrameRecorder) error {
	if r == nil {
		return curated.Errorf("input: attach recorder: recorder is nil")
	}
	if inp.recorder != nil {
		return curated.Errorf("input: attach recorder: a recorder is already attached")
	}
	inp.recorder = r
	return nil
}

// DetachRecorder removes the attached recorder, if there is one.
func (inp *Input) DetachRecorder() {
	inp.recorder = nil
}

// Recording returns true if a recorder is attached.
func (inp *Input) Recording() bool {
	return inp.recorder != nil
}
