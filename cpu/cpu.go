// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES (decimal mode stored but ignored, matching the Ricoh variant).
package cpu

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sixtyfiveohtwo/mask"
)

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// ClockPeriod is the real NES 6502's nominal time-per-cycle, kept for
// embedders that want to pace Tick in real time. The core itself never
// sleeps; pacing is entirely the caller's decision.
const ClockPeriod = 1e9 / 1789773 // nanoseconds per cycle, untyped (about 558.73)

// NMIVector, ResetVector, and IRQVector are the fixed little-endian
// addresses the Cpu reads on the three entry sequences.
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IRQVector   uint16 = 0xfffe
)

// Bus is the narrow interface the Cpu needs from its memory: a flat,
// byte-addressable 64 kB space. *mem.Bus satisfies it directly; embedders
// may supply their own (e.g. to add mirroring or memory-mapped I/O) since
// the Cpu never assumes anything beyond this contract.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, val byte)
}

// The Cpu has no memory of its own beyond its registers. Instead, it
// interfaces with a Bus that provides the full address space.
type Cpu struct {
	Bus Bus

	A byte // Accumulator
	X byte
	Y byte

	// SP is always interpreted as an offset into page 1
	// (0x0100 | SP). Pushes post-decrement; pops pre-increment.
	SP byte

	PC uint16

	P Status

	// CyclesRemaining counts down the cycles owed to the instruction
	// currently in flight. Tick decrements it once per call; a new
	// instruction is only fetched once it reaches zero.
	CyclesRemaining uint64

	// Halted latches true once a BRK completes. The Cpu does not stop
	// ticking on its own — an embedder that cares should check this flag.
	Halted bool
}

// New constructs a Cpu bound to bus, with the power-on register values from
// power-on. Reset must still be called before the first Tick to seed PC
// from the reset vector.
func New(bus Bus) *Cpu {
	return &Cpu{
		Bus: bus,
		SP:  0xfd,
		P: Status{
			InterruptDisable: true,
			Unused:           true,
		},
	}
}

// Read reads one byte from addr via the Bus.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write writes data to addr via the Bus.
func (c *Cpu) Write(addr uint16, data byte) { c.Bus.Write(addr, data) }

// push writes b to the stack page and decrements SP (wrapping modulo 256).
func (c *Cpu) push(b byte) {
	c.Write(0x0100|uint16(c.SP), b)
	c.SP--
}

// pop increments SP (wrapping modulo 256) and reads the byte now on top.
func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

// pushWord pushes a 16-bit value high byte first, the convention every
// stack-touching multi-byte push in this core uses (JSR, interrupts).
func (c *Cpu) pushWord(w uint16) {
	c.push(byte(w >> 8))
	c.push(byte(w))
}

// popWord pops a 16-bit value low byte first, the inverse of pushWord.
func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}

// readVector reads the little-endian 16-bit address stored at addr and
// addr+1, used for the three interrupt vectors.
func (c *Cpu) readVector(addr uint16) uint16 {
	lo := c.Read(addr)
	hi := c.Read(addr + 1)
	return mask.Word(hi, lo)
}

// Reset re-seeds PC from the reset vector and restores the registers a
// real 6502 resets on power-up or a low RES pulse. The status flags are
// left as previously initialized — New already sets the
// conventional 0x24 (InterruptDisable|Unused) — so two consecutive Resets
// leave the Cpu in the same state as one.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xfd
	c.PC = c.readVector(ResetVector)
	c.CyclesRemaining = 8
}

// NMI services a non-maskable interrupt: it cannot be ignored, and runs
// regardless of the InterruptDisable flag.
func (c *Cpu) NMI() {
	c.pushWord(c.PC)
	c.P.Break = false
	c.P.Unused = true
	c.P.InterruptDisable = true
	c.push(c.P.ToByte())
	c.PC = c.readVector(NMIVector)
	c.CyclesRemaining = 8
}

// IRQ services a maskable interrupt. It is a no-op if InterruptDisable is
// set.
func (c *Cpu) IRQ() {
	if c.P.InterruptDisable {
		return
	}
	c.pushWord(c.PC)
	c.P.Break = false
	c.P.Unused = true
	c.P.InterruptDisable = true
	c.push(c.P.ToByte())
	c.PC = c.readVector(IRQVector)
	c.CyclesRemaining = 7
}

// Tick advances the Cpu by one clock cycle. When the cycles owed to the
// instruction in flight reach zero, it fetches, decodes, and dispatches the
// next one; otherwise it just burns down the count. A non-nil error
// indicates a fatal condition (an opcode byte with no table entry) and
// leaves PC pointing at the offending byte.
func (c *Cpu) Tick() error {
	if c.CyclesRemaining > 0 {
		c.CyclesRemaining--
		return nil
	}

	op := c.Read(c.PC)
	desc := opcodeTable[op]
	if desc.Run == nil {
		return errors.Wrapf(ErrUnknownOpcode, "opcode 0x%02x at PC 0x%04x", op, c.PC)
	}

	c.PC++
	c.CyclesRemaining = uint64(desc.BaseCycles)

	pcAfterOpcode := c.PC
	desc.Run(c, desc.Mode)

	if c.PC == pcAfterOpcode {
		c.PC += uint16(desc.Length - 1)
	}

	c.CyclesRemaining--
	return nil
}

// LoadProgram parses a whitespace-separated stream of hex byte pairs (e.g.
// "A9 42 00") and places the decoded bytes into the Bus starting at addr.
// This is the textual format the reference driver's program files use.
func (c *Cpu) LoadProgram(program []byte, addr uint16) error {
	for i, f := range strings.Fields(string(program)) {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return errors.Wrapf(err, "program byte %d (%q)", i, f)
		}
		c.Write(addr+uint16(i), byte(b))
	}
	return nil
}
