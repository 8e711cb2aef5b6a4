package cpu

import (
	"iter"
)

// LinkKind is how a label reference is patched into an opcode's
// trailing bytes.
type LinkKind int

const (
	LINK_NONE  = LinkKind(iota)
	LINK_REL8  // Signed 8-bit displacement from the next instruction.
	LINK_REL32 // 32-bit displacement from the next instruction.
	LINK_ABS32 // 32-bit absolute address.
)

// Opcode represents a line of assembled code with its source location and
// generated machine code.
type Opcode struct {
	LineNo    int
	Ip        uint32
	Words     []string
	Codes     []byte
	LinkLabel string
	Link      LinkKind
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug locates the opcode containing the byte at eip.
func (prog *Program) Debug(eip uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if eip >= op.Ip && eip < op.Ip+uint32(len(op.Codes)) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(eip - op.Ip),
			}
			break
		}
	}

	return
}

// Origin returns the address of the first byte of the program.
func (prog *Program) Origin() uint32 {
	if len(prog.Opcodes) == 0 {
		return 0
	}
	return prog.Opcodes[0].Ip
}

// Binary returns the flat machine code image of the program.
func (prog *Program) Binary() (bins []byte) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Codes iterates over every byte of machine code, with its address.
func (prog *Program) Codes() iter.Seq2[uint32, byte] {
	return func(yield func(ip uint32, code byte) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+uint32(n), code) {
					return
				}
			}
		}
	}
}
