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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

// transcript header format
// ------------------------
//
// vitainput transcript
// version <n>
// created <RFC3339 time>

const (
	magicString   = "vitainput transcript"
	versionPrefix = "version "
	createdPrefix = "created "
	formatVersion = 2

	// the earliest version that can still be played back. version 1
	// transcripts do not record the ID and force of touch points
	minFormatVersion = 1
)

const (
	lineMagic int = iota
	lineVersion
	lineCreated
	numHeaderLines
)

// frame line format
// -----------------
//
// frame, buttons, lx, ly, rx, ry, front, back
//
// frame numbers are assigned by the recorder and always increase. the touch
// fields are the number of contacts followed by the contacts themselves:
//
// 2:x/y/id/force;x/y/id/force
//
// in version 1 transcripts a contact is only x/y

const (
	fieldFrame int = iota
	fieldButtons
	fieldLX
	fieldLY
	fieldRX
	fieldRY
	fieldFront
	fieldBack
	numFields
)

const fieldSep = ", "

// separators within a touch field
const (
	touchCountSep = ":"
	touchPointSep = ";"
	touchCoordSep = "/"
)

// Sentinal error patterns.
const (
	NotATranscript   = "playback: not a vitainput transcript"
	BadVersion       = "playback: unsupported transcript version (%s)"
	MalformedLine    = "playback: line %d: %v"
	NonSequentialLog = "playback: line %d: frame %d does not follow frame %d"
)

func encodeTouch(td sampler.TouchData) string {
	n := max(0, min(td.ReportNum, sampler.MaxReport))
	if n == 0 {
		return "0"
	}

	pts := make([]string, n)
	for i := range n {
		r := td.Report[i]
		pts[i] = strings.Join([]string{
			strconv.Itoa(int(r.X)),
			strconv.Itoa(int(r.Y)),
			strconv.Itoa(int(r.ID)),
			strconv.Itoa(int(r.Force)),
		}, touchCoordSep)
	}
	return fmt.Sprintf("%d%s%s", n, touchCountSep, strings.Join(pts, touchPointSep))
}

func decodeTouch(s string, version int) (sampler.TouchData, error) {
	var td sampler.TouchData

	count, points, hasPoints := strings.Cut(s, touchCountSep)
	n, err := strconv.Atoi(count)
	if err != nil {
		return td, fmt.Errorf("touch count: %w", err)
	}
	if n < 0 || n > sampler.MaxReport {
		return td, fmt.Errorf("touch count out of range (%d)", n)
	}
	if n == 0 {
		if hasPoints {
			return td, fmt.Errorf("touch points with zero count")
		}
		return td, nil
	}

	pts := strings.Split(points, touchPointSep)
	if len(pts) != n {
		return td, fmt.Errorf("touch count (%d) does not match number of points (%d)", n, len(pts))
	}

	numCoords := 4
	if version == 1 {
		numCoords = 2
	}

	for i, p := range pts {
		coords := strings.Split(p, touchCoordSep)
		if len(coords) != numCoords {
			return td, fmt.Errorf("malformed touch point (%s)", p)
		}
		x, err := strconv.ParseUint(coords[0], 10, 16)
		if err != nil {
			return td, fmt.Errorf("touch x: %w", err)
		}
		y, err := strconv.ParseUint(coords[1], 10, 16)
		if err != nil {
			return td, fmt.Errorf("touch y: %w", err)
		}

		r := sampler.TouchReport{ID: uint8(i), X: uint16(x), Y: uint16(y)}
		if numCoords == 4 {
			id, err := strconv.ParseUint(coords[2], 10, 8)
			if err != nil {
				return td, fmt.Errorf("touch id: %w", err)
			}
			force, err := strconv.ParseUint(coords[3], 10, 8)
			if err != nil {
				return td, fmt.Errorf("touch force: %w", err)
			}
			r.ID = uint8(id)
			r.Force = uint8(force)
		}

		td.Report[i] = r
		td.ReportNum++
	}

	return td, nil
}

func encodeFrame(frame int, snap input.Snapshot) string {
	c := snap.Controller
	fields := make([]string, numFields)
	fields[fieldFrame] = strconv.Itoa(frame)
	fields[fieldButtons] = fmt.Sprintf("%#x", uint32(c.Buttons))
	fields[fieldLX] = strconv.Itoa(int(c.LX))
	fields[fieldLY] = strconv.Itoa(int(c.LY))
	fields[fieldRX] = strconv.Itoa(int(c.RX))
	fields[fieldRY] = strconv.Itoa(int(c.RY))
	fields[fieldFront] = encodeTouch(snap.Touch[sampler.PortFront])
	fields[fieldBack] = encodeTouch(snap.Touch[sampler.PortBack])
	return strings.Join(fields, fieldSep)
}

func decodeFrame(line string, version int) (int, input.Snapshot, error) {
	var snap input.Snapshot

	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return 0, snap, fmt.Errorf("expected %d fields, found %d", numFields, len(toks))
	}

	frame, err := strconv.Atoi(toks[fieldFrame])
	if err != nil {
		return 0, snap, fmt.Errorf("frame: %w", err)
	}

	b, err := strconv.ParseUint(toks[fieldButtons], 0, 32)
	if err != nil {
		return 0, snap, fmt.Errorf("buttons: %w", err)
	}
	snap.Controller.Buttons = sampler.Buttons(b)

	axes := []struct {
		field int
		v     *uint8
	}{
		{fieldLX, &snap.Controller.LX},
		{fieldLY, &snap.Controller.LY},
		{fieldRX, &snap.Controller.RX},
		{fieldRY, &snap.Controller.RY},
	}
	for _, a := range axes {
		v, err := strconv.ParseUint(toks[a.field], 10, 8)
		if err != nil {
			return 0, snap, fmt.Errorf("stick axis: %w", err)
		}
		*a.v = uint8(v)
	}

	snap.Touch[sampler.PortFront], err = decodeTouch(toks[fieldFront], version)
	if err != nil {
		return 0, snap, fmt.Errorf("%s %w", sampler.PortFront, err)
	}
	snap.Touch[sampler.PortBack], err = decodeTouch(toks[fieldBack], version)
	if err != nil {
		return 0, snap, fmt.Errorf("%s %w", sampler.PortBack, err)
	}

	return frame, snap, nil
}

// checkHeader returns the format version of the transcript
func checkHeader(lines []string) (int, error) {
	if len(lines) < numHeaderLines || lines[lineMagic] != magicString {
		return 0, curated.Errorf(NotATranscript)
	}

	v, ok := strings.CutPrefix(lines[lineVersion], versionPrefix)
	if !ok {
		return 0, curated.Errorf(BadVersion, lines[lineVersion])
	}
	version, err := strconv.Atoi(v)
	if err != nil || version < minFormatVersion || version > formatVersion {
		return 0, curated.Errorf(BadVersion, v)
	}

	if !strings.HasPrefix(lines[lineCreated], createdPrefix) {
		return 0, curated.Errorf(MalformedLine, lineCreated+1, "missing creation time")
	}

	return version, nil
}
