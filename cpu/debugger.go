package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu     *Cpu
	program []byte

	offset uint16 // only for drawing pageTable
	prevPC uint16
	error  error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	m.cpu.LoadProgram(m.program, m.offset)
	m.cpu.PC = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := msg.String()
		switch s {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			// Tick until the cycles owed to the instruction in flight are
			// spent, so one key press runs one whole instruction.
			for {
				err := m.cpu.Tick()
				if err != nil {
					m.error = err
					return m, tea.Quit
				}
				if m.cpu.CyclesRemaining == 0 {
					break
				}
			}
		}
	}
	return m, nil
}

// renderPage renders a single page as a line. The current PC is highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

var haltedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.P.Negative,
		m.cpu.P.Overflow,
		m.cpu.P.Unused,
		m.cpu.P.Break,
		m.cpu.P.Decimal,
		m.cpu.P.InterruptDisable,
		m.cpu.P.Zero,
		m.cpu.P.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}

	next := opcodeTable[m.cpu.Read(m.cpu.PC)]
	halted := ""
	if m.cpu.Halted {
		halted = haltedStyle.Render("HALTED")
	}

	return fmt.Sprintf(`
PC: %x (%x)  next: %s  %s
 A: %x
 X: %x
 Y: %x
SP: %x
N V _ B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		next.Mnemonic,
		halted,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
	) + flags
}

// footer renders the key hints shown under the register/flag panel.
func (m model) footer() string {
	return "space/j: step   q: quit"
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset),
		int(m.offset + 16*1),
		int(m.offset + 16*2),
		int(m.offset + 16*3),
		int(m.offset + 16*4),
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(opcodeTable[m.cpu.Read(m.cpu.PC)]),
		"",
		m.footer(),
	)
}

// Debug loads the program into memory at the given offset, then starts an
// interactive TUI that single-steps the Cpu one instruction at a time on
// spacebar or 'j', and quits on 'q'.
func (c *Cpu) Debug(program []byte, offset uint16) {
	m, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
