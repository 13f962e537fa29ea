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

//go:build linux

package joydev

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/logger"
	"github.com/jetsetilly/vitainput/userinput"
	"golang.org/x/sys/unix"
)

// ioctl requests for the joystick device
const (
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
	jsiocgName    = 0x80006a13 + (128 << 16)
)

// Sampler is the joystick device implementation of sampler.Sampler.
type Sampler struct {
	file *os.File
	name string

	ctrl *userinput.Controllers

	analog atomic.Bool
	frame  uint64

	// the error that stopped the reading goroutine
	readErr atomic.Value
}

// NewSampler opens the joystick device and starts reading events from it.
func NewSampler(path string, deadzone userinput.Deadzone) (*Sampler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("joydev: %v", err)
	}

	smp := &Sampler{
		file: f,
		ctrl: userinput.NewControllers(deadzone),
	}

	var name [128]byte
	if err := ioctl(f, jsiocgName, unsafe.Pointer(&name[0])); err != nil {
		f.Close()
		return nil, curated.Errorf("joydev: %s: %v", path, err)
	}
	smp.name = string(bytes.TrimRight(name[:], "\x00"))

	var axes, buttons uint8
	if err := ioctl(f, jsiocgAxes, unsafe.Pointer(&axes)); err != nil {
		f.Close()
		return nil, curated.Errorf("joydev: %s: %v", path, err)
	}
	if err := ioctl(f, jsiocgButtons, unsafe.Pointer(&buttons)); err != nil {
		f.Close()
		return nil, curated.Errorf("joydev: %s: %v", path, err)
	}

	logger.Logf(logger.Allow, "joydev", "%s: %s (%d axes, %d buttons)", path, smp.name, axes, buttons)

	go smp.read()

	return smp, nil
}

func ioctl(f *os.File, req uintptr, dest unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(dest))
	if errno != 0 {
		return errno
	}
	return nil
}

// read events until the device fails or is closed
func (smp *Sampler) read() {
	var dec decoder
	for {
		var ev jsEvent
		if err := binary.Read(smp.file, binary.LittleEndian, &ev); err != nil {
			if !errors.Is(err, os.ErrClosed) && !errors.Is(err, io.EOF) {
				smp.readErr.Store(curated.Errorf("joydev: %v", err))
			} else {
				smp.readErr.Store(curated.Errorf("joydev: device closed"))
			}
			return
		}

		for _, e := range dec.decode(ev) {
			smp.ctrl.HandleUserInput(e)
		}
	}
}

// Name returns the name of the device as reported by the driver.
func (smp *Sampler) Name() string {
	return smp.name
}

// Close implements the sampler.Closer interface. The reading goroutine ends
// when its next read fails.
func (smp *Sampler) Close() error {
	err := smp.file.Close()
	if err != nil {
		return curated.Errorf("joydev: %v", err)
	}
	return nil
}

// SetAnalogMode implements the sampler.Sampler interface.
func (smp *Sampler) SetAnalogMode(enabled bool) error {
	smp.analog.Store(enabled)
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

// PeekController implements the sampler.Sampler interface. Returns an error
// if the device can no longer be read.
func (smp *Sampler) PeekController() (sampler.ControllerData, error) {
	if err, ok := smp.readErr.Load().(error); ok {
		return sampler.ControllerData{}, err
	}
	smp.frame++
	return peek(smp.ctrl, smp.analog.Load(), smp.frame), nil
}

// PeekTouch implements the sampler.Sampler interface.
func (smp *Sampler) PeekTouch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	return sampler.TouchData{Frame: smp.frame}, nil
}
