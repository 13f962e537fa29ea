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

// Package recorder handles the recording and playback of tracker input.
//
// A Recorder is attached to an input.Input with AttachRecorder() and writes
// every snapshot to a transcript file. A Playback reads a transcript and is
// itself a sampler.Sampler. Attaching it to a new input.Input replays the
// recorded snapshots, one per call to Update(), so that the sequence of
// button edges and touch reports can be examined away from the hardware.
//
// Transcripts are plain text. The first lines are a header identifying the
// file, the format version and the creation time. Each following line is a
// single frame:
//
//	frame, buttons, lx, ly, rx, ry, front, back
//
// The buttons field is the controller bitmask in hexadecimal. The front and
// back fields are the number of touch contacts, followed by the contact
// positions in panel coordinates if there are any:
//
//	12, 0x4000, 127, 127, 127, 127, 2:100/200;1500/900, 0
package recorder
