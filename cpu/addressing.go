package cpu

import "sixtyfiveohtwo/mask"

// An AddressingMode tells the Cpu where to find the operand of an
// instruction. There are 13 possible modes.
//
// Most instructions can index the full 64 kB range of memory, that is, 256
// pages of 256 bytes. The exception is the zero-page modes, which are
// confined to the first page.
type AddressingMode int

const (
	Implicit AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect
	IndirectX
	IndirectY
)

// resolve computes the effective address for mode, reading operand bytes
// starting at the current (un-advanced) c.PC. It never mutates c.PC; the
// driver loop (Tick) is solely responsible for advancing it, per the
// instruction's declared length. The second return value reports whether
// an indexed lookup crossed a page boundary, which some instructions bill
// an extra cycle for.
func (c *Cpu) resolve(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {

	case Implicit, Accumulator:
		return 0, false

	case Immediate:
		return c.PC, false

	case Relative:
		// Branch instructions consume their own operand directly; the
		// resolver has nothing to compute here.
		return 0, false

	case ZeroPage:
		return uint16(c.Read(c.PC)), false

	case ZeroPageX:
		return uint16(c.Read(c.PC) + c.X), false

	case ZeroPageY:
		return uint16(c.Read(c.PC) + c.Y), false

	case Absolute:
		lo := c.Read(c.PC)
		hi := c.Read(c.PC + 1)
		return mask.Word(hi, lo), false

	case AbsoluteX:
		lo := c.Read(c.PC)
		hi := c.Read(c.PC + 1)
		base := mask.Word(hi, lo)
		addr := base + uint16(c.X)
		return addr, addr&0xff00 != uint16(hi)<<8

	case AbsoluteY:
		lo := c.Read(c.PC)
		hi := c.Read(c.PC + 1)
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		return addr, addr&0xff00 != uint16(hi)<<8

	case Indirect:
		ptrLo := c.Read(c.PC)
		ptrHi := c.Read(c.PC + 1)
		ptr := mask.Word(ptrHi, ptrLo)

		// The classical 6502 JMP ($xxFF) bug: the high byte is read from
		// $xx00, not from the start of the next page, because the chip
		// never carries into the pointer's high byte while fetching the
		// target. This core reproduces it.
		lo := c.Read(ptr)
		var hi byte
		if ptrLo == 0xff {
			hi = c.Read(ptr & 0xff00)
		} else {
			hi = c.Read(ptr + 1)
		}
		return mask.Word(hi, lo), false

	case IndirectX:
		ptr := c.Read(c.PC) + c.X
		// Note: the high byte read is ptr+1 without an explicit zero-page
		// wrap, so ptr=0xff reads from 0x0100, not 0x0000. This is
		// preserved intentionally for bit-parity with the reference core.
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr) + 1)
		return mask.Word(hi, lo), false

	case IndirectY:
		ptr := c.Read(c.PC)
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(byte(ptr + 1)))
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		// Simplified page-cross test: compared against hi<<8 rather than
		// the full base address. Preserved for bit-parity with the
		// reference core rather than upgraded to the canonical
		// (base&0xff00) != (addr&0xff00) test.
		return addr, addr&0xff00 != uint16(hi)<<8
	}

	return 0, false
}
