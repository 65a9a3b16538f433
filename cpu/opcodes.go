package cpu

// An opcode descriptor carries everything Tick needs to decode and bill a
// single instruction byte: which addressing mode supplies its operand, how
// many bytes (including the opcode byte itself) the instruction occupies,
// how many cycles it costs before any indexed/branch penalty, and which
// semantic routine implements it.
//
// Multiple opcode bytes may share the same Run routine, differing only in
// addressing mode and cost; the routine itself never needs to know which
// byte dispatched it.
type opcode struct {
	Mnemonic   string
	Mode       AddressingMode
	Length     uint8
	BaseCycles uint8
	Run        func(c *Cpu, mode AddressingMode)
}

// opcodeTable is a fixed, sparse, 256-entry array covering every opcode
// byte. It is built once as a package-level literal and never mutated
// after init — there is no locking or lazy construction to reason about.
// Indices with no entry have a nil Run, which Tick treats as
// ErrUnknownOpcode. Only the 151 official opcodes are populated; no
// unofficial/illegal opcode is implemented.
var opcodeTable = [256]opcode{
	0x69: {Mnemonic: "ADC", Mode: Immediate, Length: 2, BaseCycles: 2, Run: adc},
	0x65: {Mnemonic: "ADC", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: adc},
	0x75: {Mnemonic: "ADC", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: adc},
	0x6D: {Mnemonic: "ADC", Mode: Absolute, Length: 3, BaseCycles: 4, Run: adc},
	0x7D: {Mnemonic: "ADC", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: adc},
	0x79: {Mnemonic: "ADC", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: adc},
	0x61: {Mnemonic: "ADC", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: adc},
	0x71: {Mnemonic: "ADC", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: adc},

	0x29: {Mnemonic: "AND", Mode: Immediate, Length: 2, BaseCycles: 2, Run: and},
	0x25: {Mnemonic: "AND", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: and},
	0x35: {Mnemonic: "AND", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: and},
	0x2D: {Mnemonic: "AND", Mode: Absolute, Length: 3, BaseCycles: 4, Run: and},
	0x3D: {Mnemonic: "AND", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: and},
	0x39: {Mnemonic: "AND", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: and},
	0x21: {Mnemonic: "AND", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: and},
	0x31: {Mnemonic: "AND", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: and},

	0x0A: {Mnemonic: "ASL", Mode: Accumulator, Length: 1, BaseCycles: 2, Run: asl},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, Length: 2, BaseCycles: 5, Run: asl},
	0x16: {Mnemonic: "ASL", Mode: ZeroPageX, Length: 2, BaseCycles: 6, Run: asl},
	0x0E: {Mnemonic: "ASL", Mode: Absolute, Length: 3, BaseCycles: 6, Run: asl},
	0x1E: {Mnemonic: "ASL", Mode: AbsoluteX, Length: 3, BaseCycles: 7, Run: asl},

	0x90: {Mnemonic: "BCC", Mode: Relative, Length: 2, BaseCycles: 2, Run: bcc},
	0xB0: {Mnemonic: "BCS", Mode: Relative, Length: 2, BaseCycles: 2, Run: bcs},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, Length: 2, BaseCycles: 2, Run: beq},

	0x24: {Mnemonic: "BIT", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: bit},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, Length: 3, BaseCycles: 4, Run: bit},

	0x30: {Mnemonic: "BMI", Mode: Relative, Length: 2, BaseCycles: 2, Run: bmi},
	0xD0: {Mnemonic: "BNE", Mode: Relative, Length: 2, BaseCycles: 2, Run: bne},
	0x10: {Mnemonic: "BPL", Mode: Relative, Length: 2, BaseCycles: 2, Run: bpl},

	0x00: {Mnemonic: "BRK", Mode: Implicit, Length: 1, BaseCycles: 7, Run: brk},

	0x50: {Mnemonic: "BVC", Mode: Relative, Length: 2, BaseCycles: 2, Run: bvc},
	0x70: {Mnemonic: "BVS", Mode: Relative, Length: 2, BaseCycles: 2, Run: bvs},

	0x18: {Mnemonic: "CLC", Mode: Implicit, Length: 1, BaseCycles: 2, Run: clc},
	0xD8: {Mnemonic: "CLD", Mode: Implicit, Length: 1, BaseCycles: 2, Run: cld},
	0x58: {Mnemonic: "CLI", Mode: Implicit, Length: 1, BaseCycles: 2, Run: cli},
	0xB8: {Mnemonic: "CLV", Mode: Implicit, Length: 1, BaseCycles: 2, Run: clv},

	0xC9: {Mnemonic: "CMP", Mode: Immediate, Length: 2, BaseCycles: 2, Run: cmp},
	0xC5: {Mnemonic: "CMP", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: cmp},
	0xD5: {Mnemonic: "CMP", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: cmp},
	0xCD: {Mnemonic: "CMP", Mode: Absolute, Length: 3, BaseCycles: 4, Run: cmp},
	0xDD: {Mnemonic: "CMP", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: cmp},
	0xD9: {Mnemonic: "CMP", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: cmp},
	0xC1: {Mnemonic: "CMP", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: cmp},
	0xD1: {Mnemonic: "CMP", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: cmp},

	0xE0: {Mnemonic: "CPX", Mode: Immediate, Length: 2, BaseCycles: 2, Run: cpx},
	0xE4: {Mnemonic: "CPX", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: cpx},
	0xEC: {Mnemonic: "CPX", Mode: Absolute, Length: 3, BaseCycles: 4, Run: cpx},

	0xC0: {Mnemonic: "CPY", Mode: Immediate, Length: 2, BaseCycles: 2, Run: cpy},
	0xC4: {Mnemonic: "CPY", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: cpy},
	0xCC: {Mnemonic: "CPY", Mode: Absolute, Length: 3, BaseCycles: 4, Run: cpy},

	0xC6: {Mnemonic: "DEC", Mode: ZeroPage, Length: 2, BaseCycles: 5, Run: dec},
	0xD6: {Mnemonic: "DEC", Mode: ZeroPageX, Length: 2, BaseCycles: 6, Run: dec},
	0xCE: {Mnemonic: "DEC", Mode: Absolute, Length: 3, BaseCycles: 6, Run: dec},
	0xDE: {Mnemonic: "DEC", Mode: AbsoluteX, Length: 3, BaseCycles: 7, Run: dec},

	0xCA: {Mnemonic: "DEX", Mode: Implicit, Length: 1, BaseCycles: 2, Run: dex},
	0x88: {Mnemonic: "DEY", Mode: Implicit, Length: 1, BaseCycles: 2, Run: dey},

	0x49: {Mnemonic: "EOR", Mode: Immediate, Length: 2, BaseCycles: 2, Run: eor},
	0x45: {Mnemonic: "EOR", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: eor},
	0x55: {Mnemonic: "EOR", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: eor},
	0x4D: {Mnemonic: "EOR", Mode: Absolute, Length: 3, BaseCycles: 4, Run: eor},
	0x5D: {Mnemonic: "EOR", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: eor},
	0x59: {Mnemonic: "EOR", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: eor},
	0x41: {Mnemonic: "EOR", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: eor},
	0x51: {Mnemonic: "EOR", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: eor},

	0xE6: {Mnemonic: "INC", Mode: ZeroPage, Length: 2, BaseCycles: 5, Run: inc},
	0xF6: {Mnemonic: "INC", Mode: ZeroPageX, Length: 2, BaseCycles: 6, Run: inc},
	0xEE: {Mnemonic: "INC", Mode: Absolute, Length: 3, BaseCycles: 6, Run: inc},
	0xFE: {Mnemonic: "INC", Mode: AbsoluteX, Length: 3, BaseCycles: 7, Run: inc},

	0xE8: {Mnemonic: "INX", Mode: Implicit, Length: 1, BaseCycles: 2, Run: inx},
	0xC8: {Mnemonic: "INY", Mode: Implicit, Length: 1, BaseCycles: 2, Run: iny},

	0x4C: {Mnemonic: "JMP", Mode: Absolute, Length: 3, BaseCycles: 3, Run: jmp},
	0x6C: {Mnemonic: "JMP", Mode: Indirect, Length: 3, BaseCycles: 5, Run: jmp},

	0x20: {Mnemonic: "JSR", Mode: Absolute, Length: 3, BaseCycles: 6, Run: jsr},

	0xA9: {Mnemonic: "LDA", Mode: Immediate, Length: 2, BaseCycles: 2, Run: lda},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: lda},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: lda},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, Length: 3, BaseCycles: 4, Run: lda},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: lda},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: lda},
	0xA1: {Mnemonic: "LDA", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: lda},
	0xB1: {Mnemonic: "LDA", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: lda},

	0xA2: {Mnemonic: "LDX", Mode: Immediate, Length: 2, BaseCycles: 2, Run: ldx},
	0xA6: {Mnemonic: "LDX", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: ldx},
	0xB6: {Mnemonic: "LDX", Mode: ZeroPageY, Length: 2, BaseCycles: 4, Run: ldx},
	0xAE: {Mnemonic: "LDX", Mode: Absolute, Length: 3, BaseCycles: 4, Run: ldx},
	0xBE: {Mnemonic: "LDX", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: ldx},

	0xA0: {Mnemonic: "LDY", Mode: Immediate, Length: 2, BaseCycles: 2, Run: ldy},
	0xA4: {Mnemonic: "LDY", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: ldy},
	0xB4: {Mnemonic: "LDY", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: ldy},
	0xAC: {Mnemonic: "LDY", Mode: Absolute, Length: 3, BaseCycles: 4, Run: ldy},
	0xBC: {Mnemonic: "LDY", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: ldy},

	0x4A: {Mnemonic: "LSR", Mode: Accumulator, Length: 1, BaseCycles: 2, Run: lsr},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, Length: 2, BaseCycles: 5, Run: lsr},
	0x56: {Mnemonic: "LSR", Mode: ZeroPageX, Length: 2, BaseCycles: 6, Run: lsr},
	0x4E: {Mnemonic: "LSR", Mode: Absolute, Length: 3, BaseCycles: 6, Run: lsr},
	0x5E: {Mnemonic: "LSR", Mode: AbsoluteX, Length: 3, BaseCycles: 7, Run: lsr},

	0xEA: {Mnemonic: "NOP", Mode: Implicit, Length: 1, BaseCycles: 2, Run: nop},

	0x09: {Mnemonic: "ORA", Mode: Immediate, Length: 2, BaseCycles: 2, Run: ora},
	0x05: {Mnemonic: "ORA", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: ora},
	0x15: {Mnemonic: "ORA", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: ora},
	0x0D: {Mnemonic: "ORA", Mode: Absolute, Length: 3, BaseCycles: 4, Run: ora},
	0x1D: {Mnemonic: "ORA", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: ora},
	0x19: {Mnemonic: "ORA", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: ora},
	0x01: {Mnemonic: "ORA", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: ora},
	0x11: {Mnemonic: "ORA", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: ora},

	0x48: {Mnemonic: "PHA", Mode: Implicit, Length: 1, BaseCycles: 3, Run: pha},
	0x08: {Mnemonic: "PHP", Mode: Implicit, Length: 1, BaseCycles: 3, Run: php},
	0x68: {Mnemonic: "PLA", Mode: Implicit, Length: 1, BaseCycles: 4, Run: pla},
	0x28: {Mnemonic: "PLP", Mode: Implicit, Length: 1, BaseCycles: 4, Run: plp},

	0x2A: {Mnemonic: "ROL", Mode: Accumulator, Length: 1, BaseCycles: 2, Run: rol},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, Length: 2, BaseCycles: 5, Run: rol},
	0x36: {Mnemonic: "ROL", Mode: ZeroPageX, Length: 2, BaseCycles: 6, Run: rol},
	0x2E: {Mnemonic: "ROL", Mode: Absolute, Length: 3, BaseCycles: 6, Run: rol},
	0x3E: {Mnemonic: "ROL", Mode: AbsoluteX, Length: 3, BaseCycles: 7, Run: rol},

	0x6A: {Mnemonic: "ROR", Mode: Accumulator, Length: 1, BaseCycles: 2, Run: ror},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, Length: 2, BaseCycles: 5, Run: ror},
	0x76: {Mnemonic: "ROR", Mode: ZeroPageX, Length: 2, BaseCycles: 6, Run: ror},
	0x6E: {Mnemonic: "ROR", Mode: Absolute, Length: 3, BaseCycles: 6, Run: ror},
	0x7E: {Mnemonic: "ROR", Mode: AbsoluteX, Length: 3, BaseCycles: 7, Run: ror},

	0x40: {Mnemonic: "RTI", Mode: Implicit, Length: 1, BaseCycles: 6, Run: rti},
	0x60: {Mnemonic: "RTS", Mode: Implicit, Length: 1, BaseCycles: 6, Run: rts},

	0xE9: {Mnemonic: "SBC", Mode: Immediate, Length: 2, BaseCycles: 2, Run: sbc},
	0xE5: {Mnemonic: "SBC", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: sbc},
	0xF5: {Mnemonic: "SBC", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: sbc},
	0xED: {Mnemonic: "SBC", Mode: Absolute, Length: 3, BaseCycles: 4, Run: sbc},
	0xFD: {Mnemonic: "SBC", Mode: AbsoluteX, Length: 3, BaseCycles: 4, Run: sbc},
	0xF9: {Mnemonic: "SBC", Mode: AbsoluteY, Length: 3, BaseCycles: 4, Run: sbc},
	0xE1: {Mnemonic: "SBC", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: sbc},
	0xF1: {Mnemonic: "SBC", Mode: IndirectY, Length: 2, BaseCycles: 5, Run: sbc},

	0x38: {Mnemonic: "SEC", Mode: Implicit, Length: 1, BaseCycles: 2, Run: sec},
	0xF8: {Mnemonic: "SED", Mode: Implicit, Length: 1, BaseCycles: 2, Run: sed},
	0x78: {Mnemonic: "SEI", Mode: Implicit, Length: 1, BaseCycles: 2, Run: sei},

	0x85: {Mnemonic: "STA", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: sta},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: sta},
	0x8D: {Mnemonic: "STA", Mode: Absolute, Length: 3, BaseCycles: 4, Run: sta},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, Length: 3, BaseCycles: 5, Run: sta},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, Length: 3, BaseCycles: 5, Run: sta},
	0x81: {Mnemonic: "STA", Mode: IndirectX, Length: 2, BaseCycles: 6, Run: sta},
	0x91: {Mnemonic: "STA", Mode: IndirectY, Length: 2, BaseCycles: 6, Run: sta},

	0x86: {Mnemonic: "STX", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: stx},
	0x96: {Mnemonic: "STX", Mode: ZeroPageY, Length: 2, BaseCycles: 4, Run: stx},
	0x8E: {Mnemonic: "STX", Mode: Absolute, Length: 3, BaseCycles: 4, Run: stx},

	0x84: {Mnemonic: "STY", Mode: ZeroPage, Length: 2, BaseCycles: 3, Run: sty},
	0x94: {Mnemonic: "STY", Mode: ZeroPageX, Length: 2, BaseCycles: 4, Run: sty},
	0x8C: {Mnemonic: "STY", Mode: Absolute, Length: 3, BaseCycles: 4, Run: sty},

	0xAA: {Mnemonic: "TAX", Mode: Implicit, Length: 1, BaseCycles: 2, Run: tax},
	0xA8: {Mnemonic: "TAY", Mode: Implicit, Length: 1, BaseCycles: 2, Run: tay},
	0xBA: {Mnemonic: "TSX", Mode: Implicit, Length: 1, BaseCycles: 2, Run: tsx},
	0x8A: {Mnemonic: "TXA", Mode: Implicit, Length: 1, BaseCycles: 2, Run: txa},
	0x9A: {Mnemonic: "TXS", Mode: Implicit, Length: 1, BaseCycles: 2, Run: txs},
	0x98: {Mnemonic: "TYA", Mode: Implicit, Length: 1, BaseCycles: 2, Run: tya},
}
