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

// Package termpad implements a sampler.Sampler that reads the keyboard from a
// terminal in raw mode. It allows the tracker to be driven on machines without
// a gamepad.
//
// Key mapping:
//
//	cursor keys or W A S D   d-pad
//	I L K J                  triangle circle cross square
//	Q E                      L R
//	Enter                    start
//	Space                    select
//	1 2 3 4                  left stick up right down left
//
// Because terminals do not report key releases, a key is held for a number
// of frames after each press. Auto repeat from the terminal extends the hold.
//
// The terminal has no touch surface so the touch ports never report contacts.
package termpad

import (
	"errors"
	"io"
	"os"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/logger"
	"github.com/jetsetilly/vitainput/userinput"
	"github.com/pkg/term"
)

// the terminal device opened by NewSampler()
const ttyPath = "/dev/tty"

// Sampler is the terminal implementation of sampler.Sampler.
type Sampler struct {
	tty *term.Term

	ctrl  *userinput.Controllers
	latch latch

	// key names from the reading goroutine
	keys chan string

	analog bool
	frame  uint64

	quit atomic.Bool

	// stop asks the reading goroutine to end. done is closed when it has
	stop atomic.Bool
	done chan struct{}
}

// NewSampler puts the terminal into raw mode and starts reading keys. Keys are
// held for latch frames after being pressed. The terminal is restored by
// Close().
func NewSampler(latch int) (*Sampler, error) {
	tty, err := term.Open(ttyPath, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("termpad: %v", err)
	}

	// a read timeout allows the reading goroutine to notice when it has been
	// asked to stop
	if err := tty.SetReadTimeout(100 * time.Millisecond); err != nil {
		tty.Restore()
		tty.Close()
		return nil, curated.Errorf("termpad: %v", err)
	}

	smp := &Sampler{
		tty:   tty,
		ctrl:  userinput.NewControllers(0),
		latch: newLatch(latch),
		keys:  make(chan string, 64),
		done:  make(chan struct{}),
	}

	go smp.read(tty)

	return smp, nil
}

// read keys until asked to stop. the terminal must not be closed until done
// has been closed
func (smp *Sampler) read(r io.Reader) {
	defer close(smp.done)

	buf := make([]byte, 32)
	for !smp.stop.Load() {
		n, err := r.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// read timeout
				continue // for loop
			}
			if !errors.Is(err, os.ErrClosed) && !errors.Is(err, syscall.EBADF) {
				logger.Log(logger.Allow, "termpad", err)
			}
			return
		}

		for _, k := range decodeKeys(buf[:n]) {
			if k == "Ctrl-C" || k == "Escape" {
				smp.quit.Store(true)
				continue // for loop
			}

			select {
			case smp.keys <- k:
			default:
				logger.Log(logger.Allow, "termpad", "dropped key event")
			}
		}
	}
}

// Quit returns true if the user has pressed Ctrl-C or Escape. Raw mode
// prevents the terminal from sending an interrupt signal.
func (smp *Sampler) Quit() bool {
	return smp.quit.Load()
}

// Close implements the sampler.Closer interface. The terminal is returned to
// the mode it was in before NewSampler() was called.
//
// Close waits for the reading goroutine to end, which happens within the read
// timeout, before the terminal is closed.
func (smp *Sampler) Close() error {
	smp.stop.Store(true)
	<-smp.done

	err := smp.tty.Restore()
	if cerr := smp.tty.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("termpad: %v", err)
	}
	return nil
}

// SetAnalogMode implements the sampler.Sampler interface.
func (smp *Sampler) SetAnalogMode(enabled bool) error {
	smp.analog = enabled
	return nil
}

// SetTouchPort implements the sampler.Sampler interface. Enabling a touch
// port is not supported.
func (smp *Sampler) SetTouchPort(port sampler.TouchPort, enabled bool, _ bool) error {
	if !port.Valid() {
		return curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	if enabled {
		return curated.Errorf(sampler.NotSupported, port.String()+" touch")
	}
	return nil
}

// service pending key presses and expire latched keys
func (smp *Sampler) service() {
	for _, k := range smp.latch.expire(smp.frame) {
		smp.ctrl.HandleUserInput(userinput.EventKeyboard{Key: k, Down: false})
	}

	for {
		select {
		case k := <-smp.keys:
			if smp.latch.press(k, smp.frame) {
				smp.ctrl.HandleUserInput(userinput.EventKeyboard{Key: k, Down: true})
			}
		default:
			return
		}
	}
}

// PeekController implements the sampler.Sampler interface.
func (smp *Sampler) PeekController() (sampler.ControllerData, error) {
	smp.frame++
	smp.service()

	d := smp.ctrl.Controller()
	d.Frame = smp.frame
	if !smp.analog {
		d.LX, d.LY = sampler.StickNeutral, sampler.StickNeutral
	}

	return d, nil
}

// PeekTouch implements the sampler.Sampler interface.
func (smp *Sampler) PeekTouch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	return sampler.TouchData{Frame: smp.frame}, nil
}
