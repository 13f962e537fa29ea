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

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/hardware/sampler/scripted"
	"github.com/jetsetilly/vitainput/recorder"
	"github.com/jetsetilly/vitainput/test"
)

func writeTranscript(t *testing.T) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "transcript")

	s := scripted.NewSampler()
	s.Push(
		scripted.Buttons(sampler.Start),
		scripted.Buttons(sampler.Start),
		scripted.Buttons(0),
	)

	inp := input.NewInput(s)
	inp.Init()

	rec, err := recorder.NewRecorder(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, inp.AttachRecorder(rec))
	for range 3 {
		inp.Update()
	}
	test.DemandSuccess(t, rec.End())

	return fn
}

func TestPlaybackMode(t *testing.T) {
	fn := writeTranscript(t)

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"PLAYBACK", fn}, tw), 0)

	out := tw.String()
	test.ExpectSuccess(t, strings.Contains(out, "frame 1: START pressed\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "frame 3: START released\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "3 frames\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "START: 1 presses, longest hold 2 frames\n"), out)
}

func TestPlaybackModeErrors(t *testing.T) {
	tw := &test.Writer{}

	// missing transcript
	test.ExpectEquality(t, launch([]string{"PLAYBACK"}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "transcript required"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"PLAYBACK", filepath.Join(t.TempDir(), "missing")}, tw), 20)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"PLAYBACK", "a", "b"}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "too many arguments"))
}

func TestLaunchFlags(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "MONITOR"), tw.String())

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, tw), 10)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"VERSION"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "vitainput "), tw.String())
}
