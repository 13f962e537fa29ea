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

package termpad

// decode a sequence of bytes read from a raw mode terminal into key names.
// names follow the convention of userinput.EventKeyboard. unrecognised bytes
// and escape sequences are ignored
func decodeKeys(buf []byte) []string {
	var keys []string

	for i := 0; i < len(buf); i++ {
		c := buf[i]

		switch {
		case c == 0x1b:
			// cursor keys are sent as ESC [ A or ESC O A depending on the
			// terminal mode
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				switch buf[i+2] {
				case 'A':
					keys = append(keys, "Up")
				case 'B':
					keys = append(keys, "Down")
				case 'C':
					keys = append(keys, "Right")
				case 'D':
					keys = append(keys, "Left")
				}
				i += 2
			} else {
				keys = append(keys, "Escape")
			}

		case c == 0x03:
			keys = append(keys, "Ctrl-C")

		case c == '\r' || c == '\n':
			keys = append(keys, "Return")

		case c == ' ':
			keys = append(keys, "Space")

		case c >= 'a' && c <= 'z':
			keys = append(keys, string(c-'a'+'A'))

		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			keys = append(keys, string(c))
		}
	}

	return keys
}

// terminals do not report key releases. a key is held from the frame it is
// pressed until the latch expires. a repeated press, from the terminal's auto
// repeat, extends the latch
type latch struct {
	frames int
	held   map[string]uint64
}

func newLatch(frames int) latch {
	return latch{
		frames: max(1, frames),
		held:   make(map[string]uint64),
	}
}

// press the key on the specified frame. returns true if the key was not
// already held
func (l *latch) press(key string, frame uint64) bool {
	_, ok := l.held[key]
	l.held[key] = frame + uint64(l.frames)
	return !ok
}

// expire returns the keys that are released on the specified frame
func (l *latch) expire(frame uint64) []string {
	var released []string
	for k, f := range l.held {
		if frame >= f {
			released = append(released, k)
			delete(l.held, k)
		}
	}
	return released
}
