package cpu

import "github.com/pkg/errors"

// ErrUnknownOpcode is returned by Tick when the fetched byte has no entry in
// the opcode table. This core implements only the 151 official 6502
// opcodes; encountering anything else is a fatal condition for the CPU
// rather than something flags can encode.
var ErrUnknownOpcode = errors.New("cpu: unknown opcode")

// ErrIllegalInstruction is reserved for descriptors explicitly marked as
// unofficial. No entry in this core's opcode table is ever marked that
// way, so this path is unreachable today; it exists so an embedder that
// extends the table with undocumented opcodes has somewhere to route a
// deliberately-unimplemented one.
var ErrIllegalInstruction = errors.New("cpu: illegal instruction")
