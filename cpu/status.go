package cpu

// https://problemkaputt.de/everynes.htm#cpuregistersandflags
// https://www.nesdev.org/wiki/CPU_ALL#CPU_2
// https://www.nesdev.org/wiki/Status_flags#Flags

// Status holds the eight independent processor flags (the P register).
// Decimal is stored and settable but never consulted by ADC/SBC, matching
// the NES variant of the 6502.
//
// 7654 3210
// NVUB DIZC
type Status struct {
	Carry            bool // bit 0
	Zero             bool // bit 1
	InterruptDisable bool // bit 2
	Decimal          bool // bit 3; inherited from 6502, unused by NES
	Break            bool // bit 4; only meaningful in the byte pushed by BRK/PHP
	Unused           bool // bit 5; conceptually always 1 when pushed
	Overflow         bool // bit 6
	Negative         bool // bit 7
}

// ToByte packs the flags into their canonical byte layout, Carry in bit 0
// through Negative in bit 7.
func (s Status) ToByte() byte {
	var b byte
	for i, set := range [8]bool{
		s.Carry,
		s.Zero,
		s.InterruptDisable,
		s.Decimal,
		s.Break,
		s.Unused,
		s.Overflow,
		s.Negative,
	} {
		if set {
			b |= 1 << uint(i)
		}
	}
	return b
}

// StatusFromByte is the inverse of Status.ToByte.
func StatusFromByte(b byte) Status {
	return Status{
		Carry:            b&(1<<0) != 0,
		Zero:             b&(1<<1) != 0,
		InterruptDisable: b&(1<<2) != 0,
		Decimal:          b&(1<<3) != 0,
		Break:            b&(1<<4) != 0,
		Unused:           b&(1<<5) != 0,
		Overflow:         b&(1<<6) != 0,
		Negative:         b&(1<<7) != 0,
	}
}

// setZN sets Zero and Negative based on an 8-bit result, the flag update
// every register-producing instruction performs.
func (c *Cpu) setZN(result byte) {
	c.P.Zero = result == 0
	c.P.Negative = result&0x80 != 0
}
