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

// Package monitor renders the state of the input tracker as text for display
// in a terminal. Button states are coloured with lipgloss styles when the
// output supports colour.
package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	up       lipgloss.Style
	pressed  lipgloss.Style
	down     lipgloss.Style
	released lipgloss.Style
	box      lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 4	Blue
// 7	White
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		label:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		up:       lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		pressed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(2)),
		down:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		released: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Monitor writes a rendering of the tracker state to an output.
type Monitor struct {
	styles styles
	output io.Writer

	// raw mode terminals need a carriage return with every new line
	raw bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// If raw is true then the output is assumed to be a terminal in raw mode.
func NewMonitor(output io.Writer, raw bool) *Monitor {
	return &Monitor{
		styles: newStyles(),
		output: output,
		raw:    raw,
	}
}

// Frame clears the terminal and writes the rendering of the tracker state.
func (m *Monitor) Frame(inp *input.Input) error {
	s := "\x1b[H\x1b[2J" + m.Render(inp) + "\n"
	if m.raw {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	_, err := io.WriteString(m.output, s)
	return err
}

func (m *Monitor) button(inp *input.Input, b input.Button) string {
	name := b.String()
	switch {
	case inp.Pressed(b):
		return m.styles.pressed.Render(name)
	case inp.Released(b):
		return m.styles.released.Render(name)
	case inp.Down(b):
		return m.styles.down.Render(fmt.Sprintf("%s %d", name, inp.HoldDuration(b)))
	}
	return m.styles.up.Render(name)
}

// Render returns the tracker state as a block of text.
func (m *Monitor) Render(inp *input.Input) string {
	var rows []string

	rows = append(rows, m.styles.title.Render(fmt.Sprintf("frame %d", inp.Frame())))

	var btns []string
	for _, b := range input.Buttons() {
		btns = append(btns, m.button(inp, b))
	}
	rows = append(rows,
		strings.Join(btns[:8], " "),
		strings.Join(btns[8:], " "),
	)

	dx, dy := inp.DPad()
	rows = append(rows, fmt.Sprintf("%s %+.0f %+.0f", m.styles.label.Render("dpad"), dx, dy))

	for s := input.LeftStick; s < input.NumSticks; s++ {
		x, y, _ := inp.Analog(s)
		fx, fy, _ := inp.AnalogFloat(s)
		rows = append(rows, fmt.Sprintf("%s %3d %3d (%+.3f %+.3f)", m.styles.label.Render(s.String()), x, y, fx, fy))
	}

	for port := range sampler.NumTouchPorts {
		n := inp.TouchReportCount(port)
		line := fmt.Sprintf("%s %d/%d", m.styles.label.Render(port.String()+" touch"), n, input.TouchCapacity(port))
		for i := range n {
			if x, y, ok := inp.TouchReport(port, i); ok {
				line += fmt.Sprintf(" (%d,%d)", x, y)
			}
		}
		rows = append(rows, line)
	}

	return m.styles.box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
