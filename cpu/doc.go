// Package cpu implements a 32-bit x86 processor and assembler for the
// x86emu system.
//
// The CPU consists of an instruction pointer (EIP), eight 32-bit
// general-purpose registers (EAX-EDI), the carry, zero, sign and overflow
// flags, and a flat little-endian memory. Instructions are dispatched
// through a 256 entry opcode table; opcode groups dispatch a second time
// on the reg field of their ModRM byte. Only subtract and compare update
// the flags.
//
// The assembler provides Intel syntax assembly for the implemented
// instruction subset, supporting macros, labels, equates, and compile-time
// expression evaluation.
package cpu
