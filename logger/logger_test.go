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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/vitainput/logger"
	"github.com/jetsetilly/vitainput/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "input", "initialised")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "input: initialised\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "sdlpad", "no controller attached")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "input: initialised\nsdlpad: no controller attached\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "input: initialised\nsdlpad: no controller attached\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "sdlpad: no controller attached\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeated(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "input", "peek failed")
	log.Log(logger.Allow, "input", "peek failed")
	log.Log(logger.Allow, "input", "peek failed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "input: peek failed (repeat x3)\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "one")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: one\n")

	w.Reset()
	log.Log(logger.Allow, "b", "two")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: two\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "one")
	log.Log(logger.Allow, "b", "two")
	log.Log(logger.Allow, "c", "three")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: two\nc: three\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Logf(logger.Allow, "frame", "%d updates", 60)
	test.ExpectEquality(t, w.String(), "frame: 60 updates\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}

	v := &logger.Verbose{}
	log.Clear()
	w.Reset()
	log.Log(v, "tag", "quiet")
	v.Enabled = true
	log.Log(v, "tag", "loud")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: loud\n")
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}
