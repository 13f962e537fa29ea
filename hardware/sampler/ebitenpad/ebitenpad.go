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

// Package ebitenpad implements a sampler.Sampler using ebiten. Buttons are
// read from the keyboard and from the first gamepad with the standard layout.
// The sticks are read from the same gamepad. Touches on the window, or the
// left mouse button, are reported on the front touch panel. The right mouse
// button is reported on the back touch panel.
//
// The ebiten screen should have the dimensions of the logical touch space
// (input.ScreenWidth by input.ScreenHeight) so that window coordinates can be
// scaled directly to panel coordinates.
//
// Ebiten input state is only valid during the Update() function of an
// ebiten.Game. The peek functions must therefore be called from there, which
// normally means calling the tracker's Update() from the game's Update().
package ebitenpad

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/vitainput/curated"
	tracker "github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/userinput"
	input "github.com/quasilyte/ebitengine-input"
)

// each console button is an action in the keymap
var buttonActions = []sampler.Buttons{
	sampler.Triangle, sampler.Circle, sampler.Cross, sampler.Square,
	sampler.Up, sampler.Right, sampler.Down, sampler.Left,
	sampler.Start, sampler.Select, sampler.LTrigger, sampler.RTrigger,
}

var keymap = input.Keymap{
	input.Action(sampler.Triangle): {input.KeyGamepadY, input.KeyI},
	input.Action(sampler.Circle):   {input.KeyGamepadB, input.KeyL},
	input.Action(sampler.Cross):    {input.KeyGamepadA, input.KeyK},
	input.Action(sampler.Square):   {input.KeyGamepadX, input.KeyJ},
	input.Action(sampler.Up):       {input.KeyGamepadUp, input.KeyUp, input.KeyW},
	input.Action(sampler.Right):    {input.KeyGamepadRight, input.KeyRight, input.KeyD},
	input.Action(sampler.Down):     {input.KeyGamepadDown, input.KeyDown, input.KeyS},
	input.Action(sampler.Left):     {input.KeyGamepadLeft, input.KeyLeft, input.KeyA},
	input.Action(sampler.Start):    {input.KeyGamepadStart, input.KeyEnter},
	input.Action(sampler.Select):   {input.KeyGamepadBack, input.KeySpace},
	input.Action(sampler.LTrigger): {input.KeyGamepadL1, input.KeyQ},
	input.Action(sampler.RTrigger): {input.KeyGamepadR1, input.KeyE},
}

// Sampler is the ebiten implementation of sampler.Sampler.
type Sampler struct {
	sys     input.System
	handler *input.Handler

	deadzone userinput.Deadzone

	analog bool
	ports  [sampler.NumTouchPorts]bool

	frame uint64
	touch [sampler.NumTouchPorts]sampler.TouchData

	// reused by ebiten.AppendTouchIDs()
	touchIDs []ebiten.TouchID
}

// NewSampler is the preferred method of initialisation for the Sampler type.
func NewSampler(deadzone userinput.Deadzone) *Sampler {
	smp := &Sampler{
		deadzone: deadzone,
	}
	smp.sys.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	smp.handler = smp.sys.NewHandler(0, keymap)
	return smp
}

// SetAnalogMode implements the sampler.Sampler interface.
func (smp *Sampler) SetAnalogMode(enabled bool) error {
	smp.analog = enabled
	return nil
}

// SetTouchPort implements the sampler.Sampler interface. Force is not
// reported.
func (smp *Sampler) SetTouchPort(port sampler.TouchPort, enabled bool, _ bool) error {
	if !port.Valid() {
		return curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	smp.ports[port] = enabled
	return nil
}

// ScreenToPanel converts a position in the logical screen space to panel
// coordinates.
func ScreenToPanel(x, y int) (uint16, uint16) {
	return sampler.ClampToPanel(x*2, y*2)
}

// the first connected gamepad with the standard layout
func (smp *Sampler) gamepad() (ebiten.GamepadID, bool) {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

// PeekController implements the sampler.Sampler interface. Touch state is
// sampled at the same time and returned by subsequent calls to PeekTouch().
func (smp *Sampler) PeekController() (sampler.ControllerData, error) {
	smp.sys.Update()
	smp.frame++

	d := sampler.Neutral()
	d.Frame = smp.frame

	for _, b := range buttonActions {
		if smp.handler.ActionIsPressed(input.Action(b)) {
			d.Buttons |= b
		}
	}

	if smp.analog {
		if id, ok := smp.gamepad(); ok {
			axis := func(a ebiten.StandardGamepadAxis) uint8 {
				return userinput.AxisFloat(ebiten.StandardGamepadAxisValue(id, a), smp.deadzone)
			}
			d.LX = axis(ebiten.StandardGamepadAxisLeftStickHorizontal)
			d.LY = axis(ebiten.StandardGamepadAxisLeftStickVertical)
			d.RX = axis(ebiten.StandardGamepadAxisRightStickHorizontal)
			d.RY = axis(ebiten.StandardGamepadAxisRightStickVertical)
		}
	}

	smp.sampleTouch()

	return d, nil
}

func (smp *Sampler) sampleTouch() {
	for port := range sampler.NumTouchPorts {
		smp.touch[port] = sampler.TouchData{Frame: smp.frame}
	}

	smp.touchIDs = ebiten.AppendTouchIDs(smp.touchIDs[:0])
	for _, id := range smp.touchIDs {
		x, y := ebiten.TouchPosition(id)
		appendContact(&smp.touch[sampler.PortFront], sampler.PortFront, x, y)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		appendContact(&smp.touch[sampler.PortFront], sampler.PortFront, x, y)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		appendContact(&smp.touch[sampler.PortBack], sampler.PortBack, x, y)
	}
}

// add a contact at the screen position unless the panel is already reporting
// as many contacts as it can
func appendContact(td *sampler.TouchData, port sampler.TouchPort, x, y int) bool {
	if td.ReportNum >= tracker.TouchCapacity(port) {
		return false
	}
	return td.Append(ScreenToPanel(x, y))
}

// PeekTouch implements the sampler.Sampler interface.
func (smp *Sampler) PeekTouch(port sampler.TouchPort) (sampler.TouchData, error) {
	if !port.Valid() {
		return sampler.TouchData{}, curated.Errorf(sampler.UnknownTouchPort, int(port))
	}
	if !smp.ports[port] {
		return sampler.TouchData{Frame: smp.frame}, nil
	}
	return smp.touch[port], nil
}
