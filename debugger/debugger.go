// Package debugger provides an interactive single-step TUI over a cpu.CPU,
// adapted from the teacher's bubbletea model to the bus/operand-based core.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"go6502/cpu"
)

type model struct {
	c      *cpu.CPU
	offset uint16 // starting PC recorded by Run; pageTable does not read it
	prevPC uint16
	err    error
}

// Init is the first function bubbletea calls. No initial command needed:
// the CPU is already reset by the time Run constructs the model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.c.Regs.PC
			// Finish any pending cycles (e.g. the 7 reset cycles) so the
			// loop below always executes exactly one instruction.
			for m.c.CyclesRemaining() > 0 {
				if err := m.c.Tick(); err != nil {
					m.err = err
					return m, tea.Quit
				}
			}
			for {
				err := m.c.Tick()
				if err != nil {
					m.err = err
					return m, tea.Quit
				}
				if m.c.CyclesRemaining() == 0 {
					break
				}
			}
		}
	}
	return m, nil
}

func (m model) peek(addr uint16) uint8 {
	v, err := m.c.Bus.Read(addr)
	if err != nil {
		return 0
	}
	return v
}

// renderPage renders a single 16-byte page as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.peek(addr)
		if addr == m.c.Regs.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	r := m.c.Regs
	var flags string
	for _, set := range []bool{
		r.GetFlag(cpu.FlagNegative),
		r.GetFlag(cpu.FlagOverflow),
		r.GetFlag(cpu.FlagUnused),
		r.GetFlag(cpu.FlagBreak),
		r.GetFlag(cpu.FlagDecimal),
		r.GetFlag(cpu.FlagInterupt),
		r.GetFlag(cpu.FlagZero),
		r.GetFlag(cpu.FlagCarry),
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		r.PC, m.prevPC, r.A, r.X, r.Y, r.SP,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	base := m.c.Regs.PC &^ 0x0F
	offsets := []uint16{0, 16, 32, 48, 64, base, base + 16, base + 32, base + 48, base + 64}
	for _, off := range offsets {
		pages = append(pages, m.renderPage(off))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI as a single string: memory page table,
// register/flag status, and a dump of the decode table entry for the
// opcode currently under PC.
func (m model) View() string {
	op := cpu.OpcodeAt(m.peek(m.c.Regs.PC))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(op),
	)
}

// Run starts an interactive TUI against an already-loaded, already-reset
// CPU. Space or 'j' single-steps one instruction; 'q' quits.
func Run(c *cpu.CPU) error {
	final, err := tea.NewProgram(model{c: c, offset: c.Regs.PC, prevPC: c.Regs.PC}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
