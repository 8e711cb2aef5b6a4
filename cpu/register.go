package cpu

import (
	"strings"
)

// CodeReg is a general-purpose register index, as encoded in
// opcodes and ModRM fields.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_EAX = CodeReg(0) // EAX
	REG_ECX = CodeReg(1) // ECX
	REG_EDX = CodeReg(2) // EDX
	REG_EBX = CodeReg(3) // EBX
	REG_ESP = CodeReg(4) // ESP
	REG_EBP = CodeReg(5) // EBP
	REG_ESI = CodeReg(6) // ESI
	REG_EDI = CodeReg(7) // EDI

	REGISTERS_COUNT = 8
)

// Valid returns true if the index names one of the eight registers.
func (reg CodeReg) Valid() bool {
	return reg >= 0 && reg < REGISTERS_COUNT
}

// Flags is the EFLAGS register. Only the four arithmetic
// condition bits are modelled.
type Flags uint32

const (
	FLAG_CF = Flags(1 << 0)  // Carry
	FLAG_ZF = Flags(1 << 6)  // Zero
	FLAG_SF = Flags(1 << 7)  // Sign
	FLAG_OF = Flags(1 << 11) // Overflow
)

var _flag_names = [...](struct {
	flag Flags
	name string
}){
	{FLAG_CF, "CF"},
	{FLAG_ZF, "ZF"},
	{FLAG_SF, "SF"},
	{FLAG_OF, "OF"},
}

// String lists the set flags, or "-" if none are set.
func (fl Flags) String() string {
	var names []string
	for _, entry := range _flag_names {
		if fl&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}

	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, " ")
}

// ReadRegister returns the value of a register.
// The index must be valid; the decoder guarantees it by construction.
func (cpu *Cpu) ReadRegister(reg CodeReg) uint32 {
	if !reg.Valid() {
		panic(ErrRegisterInvalid)
	}
	return cpu.Register[reg]
}

// WriteRegister sets the value of a register.
func (cpu *Cpu) WriteRegister(reg CodeReg, value uint32) {
	if !reg.Valid() {
		panic(ErrRegisterInvalid)
	}
	cpu.Register[reg] = value
}

// Flag returns true if the flag is set.
func (cpu *Cpu) Flag(flag Flags) bool {
	return (cpu.Eflags & flag) != 0
}

// SetFlag sets or clears a flag.
func (cpu *Cpu) SetFlag(flag Flags, set bool) {
	if set {
		cpu.Eflags |= flag
	} else {
		cpu.Eflags &^= flag
	}
}

// updateFlagsSub sets CF, ZF, SF and OF for result = a - b.
func (cpu *Cpu) updateFlagsSub(a, b, result uint32) {
	cpu.SetFlag(FLAG_CF, a < b)
	cpu.SetFlag(FLAG_ZF, result == 0)
	cpu.SetFlag(FLAG_SF, (result>>31) != 0)
	cpu.SetFlag(FLAG_OF, (((a^b)&(a^result))>>31) != 0)
}
