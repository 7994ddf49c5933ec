package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schirmr/atari2600-emulator/hardware"
)

// debugModel is a bubbletea model that steps the machine one CPU
// instruction per space/s keypress, or to the end of the next frame per f
// keypress, showing register state and the current scanline/color-clock
// beam position.
type debugModel struct {
	m     *hardware.Machine
	err   error
	steps int
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func newDebugModel(m *hardware.Machine) debugModel {
	return debugModel{m: m}
}

func (m debugModel) Init() tea.Cmd {
	return nil
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			if _, err := m.m.Step(); err != nil {
				m.err = err
				return m, nil
			}
			m.steps++
		case "f":
			for {
				if _, err := m.m.Step(); err != nil {
					m.err = err
					return m, nil
				}
				m.steps++
				if m.m.FrameComplete() {
					break
				}
			}
		}
	}
	return m, nil
}

func (m debugModel) View() string {
	var b strings.Builder

	fmt.Fprintln(&b, headingStyle.Render("atari2600 debug viewer"))
	fmt.Fprintf(&b, "steps: %d\n\n", m.steps)

	cpu := m.m.CPU
	fmt.Fprintf(&b, "A=%02X X=%02X Y=%02X SP=%02X PC=%04X\n", cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.PC)
	fmt.Fprintf(&b, "flags: %s\n\n", flagString(cpu.SR))

	fmt.Fprintf(&b, "scanline=%d tiaCycle=%d\n\n", m.m.TIA.Scanline, m.m.TIA.TiaCycle)

	if m.err != nil {
		fmt.Fprintln(&b, errorStyle.Render(m.err.Error()))
	}

	fmt.Fprintln(&b, "\nspace/s: step one instruction   f: run to frame end   q: quit")

	return b.String()
}

func flagString(sr interface {
	Value() uint8
}) string {
	v := sr.Value()
	letters := "NV-BDIZC"
	var out strings.Builder
	for i := 0; i < 8; i++ {
		if v&(0x80>>uint(i)) != 0 {
			out.WriteByte(letters[i])
		} else {
			out.WriteByte('.')
		}
	}
	return out.String()
}
