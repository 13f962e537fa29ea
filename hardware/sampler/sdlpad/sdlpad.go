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

// Package sdlpad implements a sampler.Sampler using SDL. The first attached
// game controller supplies the buttons and sticks, and up to two SDL touch
// devices supply the touch panels. Touch device zero is the front panel and
// touch device one is the back panel.
//
// SDL events are serviced during PeekController() so that peeking never
// blocks. SDL requires that this happens on the thread that initialised it.
//
// No window is opened so SDL never has keyboard focus. Use the terminal or
// window samplers for keyboard input.
package sdlpad

import (
	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/logger"
	"github.com/jetsetilly/vitainput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Sampler is the SDL implementation of sampler.Sampler.
type Sampler struct {
	pad *sdl.GameController

	ctrl *userinput.Controllers

	analog bool
	ports  [sampler.NumTouchPorts]bool

	// the SDL touch device for each touch port, in port order
	touchDevices []sdl.TouchID

	frame uint64
}

// the console button for each SDL controller button
var padButtons = map[sdl.GameControllerButton]userinput.GamepadButton{
	sdl.CONTROLLER_BUTTON_A:             userinput.GamepadButtonA,
	sdl.CONTROLLER_BUTTON_B:             userinput.GamepadButtonB,
	sdl.CONTROLLER_BUTTON_X:             userinput.GamepadButtonX,
	sdl.CONTROLLER_BUTTON_Y:             userinput.GamepadButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  userinput.GamepadButtonLeftShoulder,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: userinput.GamepadButtonRightShoulder,
	sdl.CONTROLLER_BUTTON_BACK:          userinput.GamepadButtonBack,
	sdl.CONTROLLER_BUTTON_START:         userinput.GamepadButtonStart,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       userinput.GamepadButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     userinput.GamepadButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     userinput.GamepadButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    userinput.GamepadButtonRight,
}

// NewSampler is the preferred method of initialisation for the Sampler type.
// A missing game controller is not an error. One will be opened if it is
// attached later.
func NewSampler(deadzone userinput.Deadzone) (*Sampler, error) {
	if err := sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf("sdlpad: %v", err)
	}

	smp := &Sampler{
		ctrl: userinput.NewControllers(deadzone),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if smp.open(i) {
			break // for loop
		}
	}

	if smp.pad == nil {
		logger.Log(logger.Allow, "sdlpad", "no game controller found")
	}

	for i := 0; i < min(sdl.GetNumTouchDevices(), int(sampler.NumTouchPorts)); i++ {
		id := sdl.GetTouchDevice(i)
		smp.touchDevices = append(smp.touchDevices, id)
		logger.Logf(logger.Allow, "sdlpad", "%s touch: device %d", sampler.TouchPort(i), id)
	}

	return smp, nil
}

// open the game controller at the device index. returns true if the
// controller is now open
func (smp *Sampler) open(idx int) bool {
	if smp.pad != nil || !sdl.IsGameController(idx) {
		return false
	}

	pad := sdl.GameControllerOpen(idx)
	if pad == nil || !pad.Attached() {
		return false
	}

	smp.pad = pad
	logger.Logf(logger.Allow, "sdlpad", "gamepad: %s", pad.Name())

	return true
}

// Close implements the sampler.Closer interface.
func (smp *Sampler) Close() error {
	if smp.pad != nil {
		smp.pad.Close()
		smp.pad = nil
	}
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	return nil
}

// SetAnalogMode implements the sampler.Sampler interface.
func (smp *Sampler) SetAnalogMode(enabled bool) error {
	smp.analog = enabled
	return nil
}

// SetTouchPort implements the sampler.Sampler interface. SDL does not report
// touch pressure so the force argument is ignored.
func (smp *Sampler) SetTouchPort(port sampler.TouchPort, enabled bool, _ bool) error {
	if !port.Valid() {
		return curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	smp.ports[port] = enabled
	return nil
}

// touch port for an SDL touch device. returns false if the device is not
// one of the touch devices found when the sampler was created
func (smp *Sampler) touchPort(id sdl.TouchID) (sampler.TouchPort, bool) {
	for i, d := range smp.touchDevices {
		if d == id {
			return sampler.TouchPort(i), true
		}
	}
	return 0, false
}

func (smp *Sampler) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		smp.handleEvent(ev)
	}
}

func (smp *Sampler) handleEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			smp.open(int(ev.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if smp.pad != nil && smp.pad.Joystick().InstanceID() == ev.Which {
				logger.Logf(logger.Allow, "sdlpad", "gamepad removed: %s", smp.pad.Name())
				smp.pad.Close()
				smp.pad = nil
				smp.ctrl.Reset()
			}
		}

	case *sdl.ControllerButtonEvent:
		if b, ok := padButtons[sdl.GameControllerButton(ev.Button)]; ok {
			smp.ctrl.HandleUserInput(userinput.EventGamepadButton{
				Button: b,
				Down:   ev.State == sdl.PRESSED,
			})
		}

	case *sdl.ControllerAxisEvent:
		if smp.pad == nil {
			break // switch
		}
		switch sdl.GameControllerAxis(ev.Axis) {
		case sdl.CONTROLLER_AXIS_LEFTX, sdl.CONTROLLER_AXIS_LEFTY:
			smp.ctrl.HandleUserInput(userinput.EventGamepadStick{
				Stick: userinput.GamepadStickLeft,
				Horiz: smp.pad.Axis(sdl.CONTROLLER_AXIS_LEFTX),
				Vert:  smp.pad.Axis(sdl.CONTROLLER_AXIS_LEFTY),
			})
		case sdl.CONTROLLER_AXIS_RIGHTX, sdl.CONTROLLER_AXIS_RIGHTY:
			smp.ctrl.HandleUserInput(userinput.EventGamepadStick{
				Stick: userinput.GamepadStickRight,
				Horiz: smp.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTX),
				Vert:  smp.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTY),
			})
		}

	case *sdl.TouchFingerEvent:
		port, ok := smp.touchPort(ev.TouchID)
		if !ok {
			break // switch
		}
		_, err := smp.ctrl.HandleUserInput(userinput.EventTouch{
			Port:   port,
			Finger: int64(ev.FingerID),
			X:      float64(ev.X),
			Y:      float64(ev.Y),
			Down:   ev.Type != sdl.FINGERUP,
		})
		if err != nil {
			logger.Log(logger.Allow, "sdlpad", err)
		}
	}
}

// PeekController implements the sampler.Sampler interface.
func (smp *Sampler) PeekController() (sampler.ControllerData, error) {
	smp.service()
	smp.frame++

	d := smp.ctrl.Controller()
	d.Frame = smp.frame
	if !smp.analog {
		d.LX, d.LY = sampler.StickNeutral, sampler.StickNeutral
		d.RX, d.RY = sampler.StickNeutral, sampler.StickNeutral
	}

	return d, nil
}

// PeekTouch implements the sampler.Sampler interface.
func (smp *Sampler) PeekTouch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	if !smp.ports[port] {
		return sampler.TouchData{Frame: smp.frame}, nil
	}

	td, err := smp.ctrl.Touch(port)
	if err != nil {
		return sampler.TouchData{}, err
	}
	td.Frame = smp.frame

	return td, nil
}
