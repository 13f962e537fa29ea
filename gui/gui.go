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
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/vitainput/hardware/input"
)

type gui struct {
	inp *input.Input
}

func (g *gui) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.inp.Update()
	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	Draw(screen, g.inp)
}

func (g *gui) Layout(width, height int) (int, int) {
	return input.ScreenWidth, input.ScreenHeight
}

// Launch opens the window and updates the input tracker once per frame at
// the specified rate. The function returns when the window is closed or the
// escape key is pressed.
//
// Must be called from the main thread.
func Launch(inp *input.Input, fps int) error {
	ebiten.SetWindowTitle("vitainput")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(input.ScreenWidth, input.ScreenHeight)
	ebiten.SetTPS(fps)

	g := &gui{
		inp: inp,
	}

	return ebiten.RunGame(g)
}
