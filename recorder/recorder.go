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

package recorder

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/input"
)

// Recorder writes every snapshot it is given to a transcript file. It
// implements the input.FrameRecorder interface.
type Recorder struct {
	filename string
	file     *os.File
	output   *bufio.Writer

	frames int
}

// NewRecorder is the preferred method of implementation for the Recorder
// type. The transcript file is created and the header written immediately.
// An existing file is not overwritten.
func NewRecorder(filename string) (*Recorder, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{
		filename: filename,
		file:     f,
		output:   bufio.NewWriter(f),
	}

	if err := rec.writeHeader(time.Now()); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%s (%d frames)", rec.filename, rec.frames)
}

func (rec *Recorder) writeHeader(created time.Time) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineVersion] = fmt.Sprintf("%s%d", versionPrefix, formatVersion)
	lines[lineCreated] = createdPrefix + created.Format(time.RFC3339)

	for _, l := range lines {
		if _, err := fmt.Fprintln(rec.output, l); err != nil {
			return curated.Errorf("recorder: %v", err)
		}
	}

	return nil
}

// RecordFrame implements the input.FrameRecorder interface.
//
// Frames in the transcript are numbered by the recorder. The tracker's frame
// number is not used because it restarts whenever the tracker is cleared.
func (rec *Recorder) RecordFrame(_ int, snap input.Snapshot) error {
	if rec.output == nil {
		return curated.Errorf("recorder: transcript has ended")
	}
	if _, err := fmt.Fprintln(rec.output, encodeFrame(rec.frames+1, snap)); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	rec.frames++
	return nil
}

// Frames returns the number of frames written to the transcript.
func (rec *Recorder) Frames() int {
	return rec.frames
}

// End flushes and closes the transcript. Calls to RecordFrame() after End()
// will fail.
func (rec *Recorder) End() error {
	if rec.output == nil {
		return nil
	}

	err := rec.output.Flush()
	rec.output = nil

	if cerr := rec.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}
