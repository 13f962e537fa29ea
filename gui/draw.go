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

package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

var (
	colUp       = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	colPressed  = color.RGBA{R: 64, G: 200, B: 64, A: 255}
	colDown     = color.RGBA{R: 64, G: 96, B: 220, A: 255}
	colReleased = color.RGBA{R: 220, G: 64, B: 64, A: 255}
	colStick    = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colFront    = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	colBack     = color.RGBA{R: 255, G: 160, B: 0, A: 160}
)

// the colour representing the state of a button
func buttonColour(inp *input.Input, b input.Button) color.Color {
	switch {
	case inp.Pressed(b):
		return colPressed
	case inp.Released(b):
		return colReleased
	case inp.Down(b):
		return colDown
	}
	return colUp
}

// position of a widget on the screen
type position struct {
	x, y float32
}

const (
	buttonRadius = 22
	stickRadius  = 60
	stickDot     = 12
	shoulderW    = 140
	shoulderH    = 30
	smallW       = 80
	smallH       = 24
	touchRadius  = 24
)

var buttonPositions = map[input.Button]position{
	input.Triangle: {800, 140},
	input.Circle:   {860, 200},
	input.Cross:    {800, 260},
	input.Square:   {740, 200},
	input.Up:       {160, 140},
	input.Right:    {220, 200},
	input.Down:     {160, 260},
	input.Left:     {100, 200},
}

var shoulderPositions = map[input.Button]position{
	input.L: {40, 30},
	input.R: {input.ScreenWidth - 40 - shoulderW, 30},
}

var smallPositions = map[input.Button]position{
	input.Select: {380, 460},
	input.Start:  {500, 460},
}

var stickPositions = [input.NumSticks]position{
	input.LeftStick:  {280, 380},
	input.RightStick: {680, 380},
}

// offset of the stick indicator from the centre of the stick widget
func stickOffset(fx, fy float32) (float32, float32) {
	return fx * (stickRadius - stickDot), fy * (stickRadius - stickDot)
}

// Draw the tracker state onto the image.
func Draw(screen *ebiten.Image, inp *input.Input) {
	for b, p := range buttonPositions {
		vector.DrawFilledCircle(screen, p.x, p.y, buttonRadius, buttonColour(inp, b), true)
	}

	for b, p := range shoulderPositions {
		vector.DrawFilledRect(screen, p.x, p.y, shoulderW, shoulderH, buttonColour(inp, b), true)
		ebitenutil.DebugPrintAt(screen, b.String(), int(p.x)+4, int(p.y)+8)
	}

	for b, p := range smallPositions {
		vector.DrawFilledRect(screen, p.x, p.y, smallW, smallH, buttonColour(inp, b), true)
		ebitenutil.DebugPrintAt(screen, b.String(), int(p.x)+4, int(p.y)+4)
	}

	for s := input.LeftStick; s < input.NumSticks; s++ {
		p := stickPositions[s]
		vector.StrokeCircle(screen, p.x, p.y, stickRadius, 2, colUp, true)
		if fx, fy, ok := inp.AnalogFloat(s); ok {
			dx, dy := stickOffset(fx, fy)
			vector.DrawFilledCircle(screen, p.x+dx, p.y+dy, stickDot, colStick, true)
		}
	}

	touch := func(port sampler.TouchPort, col color.Color, solid bool) {
		for i := range inp.TouchReportCount(port) {
			x, y, ok := inp.TouchReport(port, i)
			if !ok {
				continue
			}
			if solid {
				vector.DrawFilledCircle(screen, float32(x), float32(y), touchRadius, col, true)
			} else {
				vector.StrokeCircle(screen, float32(x), float32(y), touchRadius, 3, col, true)
			}
		}
	}
	touch(sampler.PortBack, colBack, false)
	touch(sampler.PortFront, colFront, true)

	dx, dy := inp.DPad()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d  dpad %+.0f %+.0f  front %d  back %d",
		inp.Frame(), dx, dy,
		inp.TouchReportCount(sampler.PortFront), inp.TouchReportCount(sampler.PortBack)),
		8, input.ScreenHeight-20)
}
