package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdcCarryAndOverflow(t *testing.T) {
	c := newTestCpu()
	c.A = 0x50
	c.PC = 0x10
	c.Write(c.PC, 0x50)
	adc(c, Immediate)
	assert.Equal(t, byte(0xa0), c.A)
	assert.False(t, c.P.Carry)
	assert.True(t, c.P.Overflow)
	assert.True(t, c.P.Negative)
	assert.False(t, c.P.Zero)
}

func TestAdcUnsignedCarryOut(t *testing.T) {
	c := newTestCpu()
	c.A = 0xff
	c.PC = 0x10
	c.Write(c.PC, 0x01)
	adc(c, Immediate)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.P.Carry)
	assert.True(t, c.P.Zero)
	assert.False(t, c.P.Overflow)
}

func TestSbcBorrow(t *testing.T) {
	c := newTestCpu()
	c.A = 0x00
	c.P.Carry = true // no pending borrow
	c.PC = 0x10
	c.Write(c.PC, 0x01)
	sbc(c, Immediate)
	assert.Equal(t, byte(0xff), c.A)
	assert.False(t, c.P.Carry) // borrow occurred
	assert.True(t, c.P.Negative)
}

func TestAndOraEor(t *testing.T) {
	c := newTestCpu()
	c.A = 0b1100_1100
	c.PC = 0x10
	c.Write(c.PC, 0b1010_1010)
	and(c, Immediate)
	assert.Equal(t, byte(0b1000_1000), c.A)

	c.A = 0b1100_1100
	c.Write(c.PC, 0b1010_1010)
	ora(c, Immediate)
	assert.Equal(t, byte(0b1110_1110), c.A)

	c.A = 0b1100_1100
	c.Write(c.PC, 0b1010_1010)
	eor(c, Immediate)
	assert.Equal(t, byte(0b0110_0110), c.A)
}

func TestBit(t *testing.T) {
	c := newTestCpu()
	c.A = 0x00
	c.PC = 0x20
	c.Write(c.PC, 0x10) // operand: zero-page address 0x10
	c.Write(0x10, 0xc0)
	bit(c, ZeroPage)
	assert.True(t, c.P.Zero)
	assert.True(t, c.P.Overflow)
	assert.True(t, c.P.Negative)
	assert.Equal(t, byte(0x00), c.A)
}

func TestAslLsrAccumulator(t *testing.T) {
	c := newTestCpu()
	c.A = 0x81
	asl(c, Accumulator)
	assert.Equal(t, byte(0x02), c.A)
	assert.True(t, c.P.Carry)

	c.A = 0x01
	lsr(c, Accumulator)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.P.Carry)
	assert.True(t, c.P.Zero)
}

func TestRolRorMemory(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x10
	c.Write(c.PC, 0x20) // operand: zero-page address 0x20
	c.Write(0x20, 0x20) // value to rotate
	c.P.Carry = true
	rol(c, ZeroPage)
	assert.Equal(t, byte(0x41), c.Read(0x20))
	assert.False(t, c.P.Carry)

	c.Write(0x20, 0x01)
	c.P.Carry = true
	ror(c, ZeroPage)
	assert.Equal(t, byte(0x80), c.Read(0x20))
	assert.True(t, c.P.Carry)
}

func TestCompare(t *testing.T) {
	c := newTestCpu()
	c.A = 0x10
	c.PC = 0x10
	c.Write(c.PC, 0x10)
	cmp(c, Immediate)
	assert.True(t, c.P.Carry)
	assert.True(t, c.P.Zero)

	c.A = 0x05
	c.Write(c.PC, 0x10)
	cmp(c, Immediate)
	assert.False(t, c.P.Carry)
	assert.False(t, c.P.Zero)
}

func TestIncDecMemoryAndRegisters(t *testing.T) {
	c := newTestCpu()
	c.Write(0x20, 0xff)
	c.PC = 0x10
	c.Write(c.PC, 0x20)
	inc(c, ZeroPage)
	assert.Equal(t, byte(0x00), c.Read(0x20))
	assert.True(t, c.P.Zero)

	dec(c, ZeroPage)
	assert.Equal(t, byte(0xff), c.Read(0x20))
	assert.True(t, c.P.Negative)

	c.X = 0x00
	dex(c, Implicit)
	assert.Equal(t, byte(0xff), c.X)

	c.Y = 0xff
	iny(c, Implicit)
	assert.Equal(t, byte(0x00), c.Y)
	assert.True(t, c.P.Zero)
}

func TestLoadStore(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x10
	c.Write(c.PC, 0x42)
	lda(c, Immediate)
	assert.Equal(t, byte(0x42), c.A)

	c.Write(c.PC, 0x20)
	sta(c, ZeroPage)
	assert.Equal(t, byte(0x42), c.Read(0x20))
}

func TestTransfers(t *testing.T) {
	c := newTestCpu()
	c.A = 0x42
	tax(c, Implicit)
	assert.Equal(t, byte(0x42), c.X)

	c.X = 0x10
	c.P = Status{Carry: true, Negative: true} // should survive txs
	txs(c, Implicit)
	assert.Equal(t, byte(0x10), c.SP)
	assert.True(t, c.P.Carry)
	assert.True(t, c.P.Negative)

	c.SP = 0x33
	tsx(c, Implicit)
	assert.Equal(t, byte(0x33), c.X)
}

func TestStackPushPop(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xff
	c.A = 0x42
	pha(c, Implicit)
	assert.Equal(t, byte(0xfe), c.SP)
	assert.Equal(t, byte(0x42), c.Read(0x01ff))

	c.A = 0x00
	pla(c, Implicit)
	assert.Equal(t, byte(0xff), c.SP)
	assert.Equal(t, byte(0x42), c.A)
}

func TestPhpForcesBreakAndUnused(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xff
	c.P = Status{} // everything false
	php(c, Implicit)
	pushed := c.Read(0x01ff)
	s := StatusFromByte(pushed)
	assert.True(t, s.Break)
	assert.True(t, s.Unused)
}

func TestPlpForcesUnused(t *testing.T) {
	c := newTestCpu()
	c.Write(0x01ff, 0x00)
	c.SP = 0xfe
	plp(c, Implicit)
	assert.True(t, c.P.Unused)
}

func TestJsrRts(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xff
	c.PC = 0x0601 // operand byte of a JSR at 0x0600
	c.Write(c.PC, 0x09)
	c.Write(c.PC+1, 0x06)
	jsr(c, Absolute)
	assert.Equal(t, uint16(0x0609), c.PC)

	rts(c, Implicit)
	assert.Equal(t, uint16(0x0603), c.PC)
}

func TestBranchTakenCycleAccounting(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x0601
	c.Write(c.PC, 0x05)
	c.P.Zero = false
	before := c.CyclesRemaining
	bne(c, Relative)
	assert.Equal(t, uint16(0x0607), c.PC)
	assert.Equal(t, before+1, c.CyclesRemaining)
}

func TestBranchTakenPageCrossCycleAccounting(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x06f0
	c.Write(c.PC, 0x20) // next=0x06f1, target=0x0711: crosses into page 0x07
	c.P.Zero = false
	before := c.CyclesRemaining
	bne(c, Relative)
	assert.Equal(t, uint16(0x0711), c.PC)
	assert.Equal(t, before+3, c.CyclesRemaining, "taken (+1) and page cross (+2)")
}

func TestBranchNotTaken(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x0601
	c.Write(c.PC, 0x05)
	c.P.Zero = true
	before := c.CyclesRemaining
	bne(c, Relative)
	assert.Equal(t, uint16(0x0602), c.PC)
	assert.Equal(t, before, c.CyclesRemaining)
}

func TestBrkHaltsAndDispatchesIrqVector(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xff
	c.PC = 0x0601
	c.Write(IRQVector, 0x00)
	c.Write(IRQVector+1, 0x20)
	brk(c, Implicit)
	assert.True(t, c.Halted)
	assert.Equal(t, uint16(0x2000), c.PC)
	assert.True(t, c.P.InterruptDisable)
}
