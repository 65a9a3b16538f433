package cpu

// Each routine below implements the semantics of one mnemonic. They share a
// single signature so opcodeTable can store them as plain function values;
// mode tells the routine how resolve interpreted the operand, and whether an
// indexed lookup crossed a page (billed as an extra cycle on the
// read instructions that care).
//
// None of these routines touch c.PC except jmp, jsr, rts, rti, brk, and the
// branches (which move PC past their operand whether taken or not) — every
// other instruction leaves PC advancement to Tick.

func addPenalty(c *Cpu, crossed bool) {
	if crossed {
		c.CyclesRemaining++
	}
}

func adc(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	m := c.Read(addr)
	sum := uint16(c.A) + uint16(m)
	if c.P.Carry {
		sum++
	}
	result := byte(sum)
	c.P.Overflow = (c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.P.Carry = sum > 0xff
	c.A = result
	c.setZN(c.A)
	addPenalty(c, crossed)
}

func sbc(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	m := c.Read(addr) ^ 0xff
	sum := uint16(c.A) + uint16(m)
	if c.P.Carry {
		sum++
	}
	result := byte(sum)
	c.P.Overflow = (c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.P.Carry = sum > 0xff
	c.A = result
	c.setZN(c.A)
	addPenalty(c, crossed)
}

func and(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	c.A &= c.Read(addr)
	c.setZN(c.A)
	addPenalty(c, crossed)
}

func ora(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	c.A |= c.Read(addr)
	c.setZN(c.A)
	addPenalty(c, crossed)
}

func eor(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	c.A ^= c.Read(addr)
	c.setZN(c.A)
	addPenalty(c, crossed)
}

func bit(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	m := c.Read(addr)
	c.P.Zero = c.A&m == 0
	c.P.Overflow = m&0x40 != 0
	c.P.Negative = m&0x80 != 0
}

func asl(c *Cpu, mode AddressingMode) {
	if mode == Accumulator {
		c.P.Carry = c.A&0x80 != 0
		c.A <<= 1
		c.setZN(c.A)
		return
	}
	addr, _ := c.resolve(mode)
	m := c.Read(addr)
	c.P.Carry = m&0x80 != 0
	m <<= 1
	c.Write(addr, m)
	c.setZN(m)
}

func lsr(c *Cpu, mode AddressingMode) {
	if mode == Accumulator {
		c.P.Carry = c.A&0x01 != 0
		c.A >>= 1
		c.setZN(c.A)
		return
	}
	addr, _ := c.resolve(mode)
	m := c.Read(addr)
	c.P.Carry = m&0x01 != 0
	m >>= 1
	c.Write(addr, m)
	c.setZN(m)
}

func rol(c *Cpu, mode AddressingMode) {
	var oldCarry byte
	if c.P.Carry {
		oldCarry = 1
	}
	if mode == Accumulator {
		c.P.Carry = c.A&0x80 != 0
		c.A = c.A<<1 | oldCarry
		c.setZN(c.A)
		return
	}
	addr, _ := c.resolve(mode)
	m := c.Read(addr)
	c.P.Carry = m&0x80 != 0
	m = m<<1 | oldCarry
	c.Write(addr, m)
	c.setZN(m)
}

func ror(c *Cpu, mode AddressingMode) {
	var oldCarry byte
	if c.P.Carry {
		oldCarry = 0x80
	}
	if mode == Accumulator {
		c.P.Carry = c.A&0x01 != 0
		c.A = c.A>>1 | oldCarry
		c.setZN(c.A)
		return
	}
	addr, _ := c.resolve(mode)
	m := c.Read(addr)
	c.P.Carry = m&0x01 != 0
	m = m>>1 | oldCarry
	c.Write(addr, m)
	c.setZN(m)
}

func cmp(c *Cpu, mode AddressingMode) { compare(c, mode, c.A) }
func cpx(c *Cpu, mode AddressingMode) { compare(c, mode, c.X) }
func cpy(c *Cpu, mode AddressingMode) { compare(c, mode, c.Y) }

// compare performs the unsigned subtraction shared by CMP/CPX/CPY: the
// result is discarded, only the flags survive.
func compare(c *Cpu, mode AddressingMode, reg byte) {
	addr, crossed := c.resolve(mode)
	m := c.Read(addr)
	c.P.Carry = reg >= m
	result := reg - m
	c.setZN(result)
	if mode == AbsoluteX || mode == AbsoluteY || mode == IndirectY {
		addPenalty(c, crossed)
	}
}

func dec(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	m := c.Read(addr) - 1
	c.Write(addr, m)
	c.setZN(m)
}

func inc(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	m := c.Read(addr) + 1
	c.Write(addr, m)
	c.setZN(m)
}

func dex(c *Cpu, _ AddressingMode) { c.X--; c.setZN(c.X) }
func dey(c *Cpu, _ AddressingMode) { c.Y--; c.setZN(c.Y) }
func inx(c *Cpu, _ AddressingMode) { c.X++; c.setZN(c.X) }
func iny(c *Cpu, _ AddressingMode) { c.Y++; c.setZN(c.Y) }

func lda(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	c.A = c.Read(addr)
	c.setZN(c.A)
	addPenalty(c, crossed)
}

func ldx(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	c.X = c.Read(addr)
	c.setZN(c.X)
	addPenalty(c, crossed)
}

func ldy(c *Cpu, mode AddressingMode) {
	addr, crossed := c.resolve(mode)
	c.Y = c.Read(addr)
	c.setZN(c.Y)
	addPenalty(c, crossed)
}

func sta(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	c.Write(addr, c.A)
}

func stx(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	c.Write(addr, c.X)
}

func sty(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	c.Write(addr, c.Y)
}

func tax(c *Cpu, _ AddressingMode) { c.X = c.A; c.setZN(c.X) }
func tay(c *Cpu, _ AddressingMode) { c.Y = c.A; c.setZN(c.Y) }
func tsx(c *Cpu, _ AddressingMode) { c.X = c.SP; c.setZN(c.X) }
func txa(c *Cpu, _ AddressingMode) { c.A = c.X; c.setZN(c.A) }
func tya(c *Cpu, _ AddressingMode) { c.A = c.Y; c.setZN(c.A) }

// txs copies X into SP without touching any flag, the one transfer that
// behaves like a pure register move rather than a load.
func txs(c *Cpu, _ AddressingMode) { c.SP = c.X }

func pha(c *Cpu, _ AddressingMode) { c.push(c.A) }

// php always pushes the status byte with Break and Unused set, regardless
// of their live values, matching how a real 6502 reports the flags when
// a software or hardware push (as opposed to an interrupt) puts them on
// the stack.
func php(c *Cpu, _ AddressingMode) {
	s := c.P
	s.Break = true
	s.Unused = true
	c.push(s.ToByte())
}

func pla(c *Cpu, _ AddressingMode) {
	c.A = c.pop()
	c.setZN(c.A)
}

// plp restores all eight flags from the stack byte, but Unused is always
// treated as set, since it never corresponds to real wired-up state.
func plp(c *Cpu, _ AddressingMode) {
	c.P = StatusFromByte(c.pop())
	c.P.Unused = true
}

func clc(c *Cpu, _ AddressingMode) { c.P.Carry = false }
func sec(c *Cpu, _ AddressingMode) { c.P.Carry = true }
func cli(c *Cpu, _ AddressingMode) { c.P.InterruptDisable = false }
func sei(c *Cpu, _ AddressingMode) { c.P.InterruptDisable = true }
func cld(c *Cpu, _ AddressingMode) { c.P.Decimal = false }
func sed(c *Cpu, _ AddressingMode) { c.P.Decimal = true }
func clv(c *Cpu, _ AddressingMode) { c.P.Overflow = false }

func nop(c *Cpu, _ AddressingMode) {}

func jmp(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	c.PC = addr
}

// jsr pushes the address of the last byte of the JSR instruction (not the
// address of the next instruction) and jumps to the target, the
// traditional 6502 convention RTS is built to undo.
func jsr(c *Cpu, mode AddressingMode) {
	addr, _ := c.resolve(mode)
	c.pushWord(c.PC + 1)
	c.PC = addr
}

// rts pops the return address pushed by jsr and resumes just past it.
func rts(c *Cpu, _ AddressingMode) {
	c.PC = c.popWord() + 1
}

// rti restores status and PC from the stack, the way IRQ/NMI/BRK handlers
// return control. Unlike rts, the popped PC is used directly: interrupts
// push the address of the instruction that was about to execute, not one
// before it.
func rti(c *Cpu, _ AddressingMode) {
	c.P = StatusFromByte(c.pop())
	c.P.Unused = true
	c.PC = c.popWord()
}

// branch implements the shared logic of all eight conditional branches:
// the operand is a signed 8-bit offset relative to the address of the
// instruction following the branch. Taking the branch costs one extra
// cycle; taking it to a different page costs two more on top of that.
func branch(c *Cpu, taken bool) {
	offset := int8(c.Read(c.PC))
	next := c.PC + 1
	if !taken {
		c.PC = next
		return
	}
	target := uint16(int32(next) + int32(offset))
	c.CyclesRemaining++
	if target&0xff00 != next&0xff00 {
		c.CyclesRemaining += 2
	}
	c.PC = target
}

func bcc(c *Cpu, _ AddressingMode) { branch(c, !c.P.Carry) }
func bcs(c *Cpu, _ AddressingMode) { branch(c, c.P.Carry) }
func beq(c *Cpu, _ AddressingMode) { branch(c, c.P.Zero) }
func bne(c *Cpu, _ AddressingMode) { branch(c, !c.P.Zero) }
func bpl(c *Cpu, _ AddressingMode) { branch(c, !c.P.Negative) }
func bmi(c *Cpu, _ AddressingMode) { branch(c, c.P.Negative) }
func bvc(c *Cpu, _ AddressingMode) { branch(c, !c.P.Overflow) }
func bvs(c *Cpu, _ AddressingMode) { branch(c, c.P.Overflow) }

// brk forces a software interrupt. The byte following the BRK opcode is a
// padding byte conventionally used to hold a signature/reason code; real
// software skips it, so the pushed return address is PC+1, one past it.
// The Cpu latches Halted once the sequence completes; nothing in this core
// clears it again, so an embedder that wants to resume past a BRK must do
// so explicitly.
func brk(c *Cpu, _ AddressingMode) {
	c.pushWord(c.PC + 1)
	s := c.P
	s.Break = true
	s.Unused = true
	c.push(s.ToByte())
	c.P.InterruptDisable = true
	c.PC = c.readVector(IRQVector)
	c.Halted = true
}
