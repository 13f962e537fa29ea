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

package recorder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/hardware/sampler/scripted"
	"github.com/jetsetilly/vitainput/recorder"
	"github.com/jetsetilly/vitainput/test"
)

// record a short session from a scripted sampler
func recordSession(t *testing.T, fn string) {
	t.Helper()

	s := scripted.NewSampler()

	f := scripted.Buttons(sampler.Cross)
	f.Controller.LX = 255
	f.Touch[sampler.PortFront] = scripted.Touch([2]uint16{100, 200}, [2]uint16{1500, 900})
	s.Push(f, f)

	f = scripted.Buttons(sampler.Cross | sampler.Up)
	s.Push(f)

	f = scripted.Buttons(0)
	f.Touch[sampler.PortBack] = scripted.Touch([2]uint16{10, 20})
	s.Push(f)

	inp := input.NewInput(s)
	inp.InitAdvanced(true, true, true)

	rec, err := recorder.NewRecorder(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, inp.AttachRecorder(rec))

	for range 5 {
		inp.Update()
	}

	test.ExpectEquality(t, rec.Frames(), 5)
	test.DemandSuccess(t, rec.End())

	// recording after the end fails
	test.ExpectFailure(t, rec.RecordFrame(6, input.Snapshot{}))
}

func TestTranscript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")
	recordSession(t, fn)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	test.DemandEquality(t, len(lines), 8)
	test.ExpectEquality(t, lines[0], "vitainput transcript")
	test.ExpectEquality(t, lines[1], "version 2")
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "created "))
	test.ExpectEquality(t, lines[3], "1, 0x4000, 255, 127, 127, 127, 2:100/200/0/0;1500/900/1/0, 0")
	test.ExpectEquality(t, lines[5], "3, 0x4010, 127, 127, 127, 127, 0, 0")
	test.ExpectEquality(t, lines[6], "4, 0x0, 127, 127, 127, 127, 0, 1:10/20/0/0")
	test.ExpectEquality(t, lines[7], "5, 0x0, 127, 127, 127, 127, 0, 0")

	// existing files are not overwritten
	_, err = recorder.NewRecorder(fn)
	test.ExpectFailure(t, err)
}

func TestPlayback(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")
	recordSession(t, fn)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Len(), 5)

	inp := input.NewInput(plb)
	inp.Init()

	inp.Update()
	test.ExpectSuccess(t, inp.Pressed(input.Cross))
	x, _, ok := inp.Analog(input.LeftStick)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 255)
	test.ExpectEquality(t, inp.TouchReportCount(sampler.PortFront), 2)
	tx, ty, ok := inp.TouchReport(sampler.PortFront, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tx, 750)
	test.ExpectEquality(t, ty, 450)

	inp.Update()
	inp.Update()
	test.ExpectEquality(t, inp.HoldDuration(input.Cross), 3)
	test.ExpectSuccess(t, inp.Pressed(input.Up))

	inp.Update()
	test.ExpectSuccess(t, inp.Released(input.Cross))
	test.ExpectSuccess(t, inp.Down(input.TouchBackPress))

	inp.Update()
	test.ExpectSuccess(t, plb.Ended())

	// the controller is at rest after the end of the transcript
	inp.Update()
	test.ExpectEquality(t, inp.Snapshot().Controller.Buttons, sampler.Buttons(0))
	x, _, _ = inp.Analog(input.LeftStick)
	test.ExpectEquality(t, x, 127)
}

func TestReplay(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")
	recordSession(t, fn)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	tw := &test.Writer{}
	sum, err := recorder.Replay(plb, tw)
	test.ExpectSuccess(t, err)

	expected := "frame 1: CROSS pressed\n" +
		"frame 1: TOUCH FRONT pressed\n" +
		"frame 3: UP pressed\n" +
		"frame 3: TOUCH FRONT released\n" +
		"frame 4: CROSS released\n" +
		"frame 4: UP released\n" +
		"frame 4: TOUCH BACK pressed\n" +
		"frame 5: TOUCH BACK released\n"
	test.ExpectEquality(t, tw.String(), expected)

	test.ExpectEquality(t, sum.Frames, 5)
	test.ExpectEquality(t, sum.Presses[input.Cross], 1)
	test.ExpectEquality(t, sum.LongestHold[input.Cross], 3)
	test.ExpectEquality(t, sum.MaxContacts[sampler.PortFront], 2)
	test.ExpectEquality(t, sum.MaxContacts[sampler.PortBack], 1)
	test.ExpectSuccess(t, strings.Contains(sum.String(), "CROSS: 1 presses, longest hold 3 frames"))
}

func TestBadTranscripts(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, content string) string {
		fn := filepath.Join(dir, name)
		test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))
		return fn
	}

	const header = "vitainput transcript\nversion 2\ncreated 2024-01-01T00:00:00Z\n"

	_, err := recorder.NewPlayback(write("magic", "not a transcript\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.NotATranscript))

	_, err = recorder.NewPlayback(write("version", "vitainput transcript\nversion 99\ncreated now\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.BadVersion))

	_, err = recorder.NewPlayback(write("fields", header+"1, 0x0, 127\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedLine))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 4"))

	_, err = recorder.NewPlayback(write("touch", header+"1, 0x0, 127, 127, 127, 127, 2:1/1, 0\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedLine))

	// version 1 contacts have no id or force
	_, err = recorder.NewPlayback(write("coords", header+"1, 0x0, 127, 127, 127, 127, 1:1/1, 0\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedLine))

	_, err = recorder.NewPlayback(write("force", header+"1, 0x0, 127, 127, 127, 127, 1:1/1/0/300, 0\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedLine))

	_, err = recorder.NewPlayback(write("version0", "vitainput transcript\nversion 0\ncreated now\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.BadVersion))

	_, err = recorder.NewPlayback(write("axis", header+"1, 0x0, 300, 127, 127, 127, 0, 0\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedLine))

	_, err = recorder.NewPlayback(write("order", header+"2, 0x0, 127, 127, 127, 127, 0, 0\n1, 0x0, 127, 127, 127, 127, 0, 0\n"))
	test.ExpectSuccess(t, curated.Is(err, recorder.NonSequentialLog))

	// a transcript with no frames is valid
	plb, err := recorder.NewPlayback(write("empty", header))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, plb.Ended())

	_, err = recorder.NewPlayback(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)
}

func TestTouchIdentity(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")

	var td sampler.TouchData
	td.Report[0] = sampler.TouchReport{ID: 7, Force: 64, X: 300, Y: 400}
	td.Report[1] = sampler.TouchReport{ID: 2, Force: 128, X: 10, Y: 20}
	td.ReportNum = 2

	f := scripted.Buttons(0)
	f.Touch[sampler.PortBack] = td

	s := scripted.NewSampler()
	s.Push(f)

	inp := input.NewInput(s)
	inp.InitAdvanced(false, true, true)

	rec, err := recorder.NewRecorder(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, inp.AttachRecorder(rec))
	inp.Update()
	test.DemandSuccess(t, rec.End())

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	inp = input.NewInput(plb)
	inp.InitAdvanced(false, true, true)
	inp.Update()

	back := inp.Snapshot().Touch[sampler.PortBack]
	test.DemandEquality(t, back.ReportNum, 2)
	test.ExpectEquality(t, back.Report[0], td.Report[0])
	test.ExpectEquality(t, back.Report[1], td.Report[1])
}

func TestClearWhileRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")

	s := scripted.NewSampler()
	s.Hold(scripted.Buttons(sampler.Circle))

	inp := input.NewInput(s)
	inp.Init()

	rec, err := recorder.NewRecorder(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, inp.AttachRecorder(rec))

	inp.Update()
	inp.Update()
	inp.Clear()
	test.ExpectEquality(t, inp.Frame(), 0)
	inp.Update()
	test.DemandSuccess(t, rec.End())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	test.DemandEquality(t, len(lines), 6)
	test.ExpectSuccess(t, strings.HasPrefix(lines[5], "3, "))

	// the transcript continues across the clear and still plays back
	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Len(), 3)
}

func TestVersionOneTranscript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transcript")
	content := "vitainput transcript\nversion 1\ncreated 2024-01-01T00:00:00Z\n" +
		"1, 0x0, 127, 127, 127, 127, 2:100/200;30/40, 0\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	inp := input.NewInput(plb)
	inp.InitAdvanced(false, true, false)
	inp.Update()

	front := inp.Snapshot().Touch[sampler.PortFront]
	test.DemandEquality(t, front.ReportNum, 2)
	test.ExpectEquality(t, front.Report[1], sampler.TouchReport{ID: 1, X: 30, Y: 40})
}
