package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("0x%x", MEMORY_SIZE),
	"EFLAGS_CF":   fmt.Sprintf("0x%x", uint32(FLAG_CF)),
	"EFLAGS_ZF":   fmt.Sprintf("0x%x", uint32(FLAG_ZF)),
	"EFLAGS_SF":   fmt.Sprintf("0x%x", uint32(FLAG_SF)),
	"EFLAGS_OF":   fmt.Sprintf("0x%x", uint32(FLAG_OF)),
}

// Cpu is the simulation context for a 32-bit x86 processor with a flat
// memory.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTERS_COUNT]uint32 // General purpose registers, by CodeReg.
	Eflags   Flags                   // Condition flags.
	Eip      uint32                  // Instruction pointer.
	Memory   *Memory                 // Flat memory.

	Halted bool // Set by HLT.
	Ticks  int  // Instructions executed since reset.
}

// NewCpu creates a new CPU with a specifically sized memory.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(size),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for reg := REG_EAX; reg < REGISTERS_COUNT; reg++ {
		val := cpu.Register[reg]
		text += fmt.Sprintf("% 6s: %04X_%04X\n", reg.String(), val>>16, val&0xffff)
	}

	text += fmt.Sprintf("% 6s: %04X_%04X\n", "EIP", cpu.Eip>>16, cpu.Eip&0xffff)
	text += fmt.Sprintf("% 6s: %v\n", "EFLAGS", cpu.Eflags)

	var strval string
	val, err := cpu.Peek32()
	if err == nil {
		strval = fmt.Sprintf("%04X_%04X", val>>16, val&0xffff)
	} else {
		strval = "----_----"
	}
	text += fmt.Sprintf("% 6s: %v\n", "STACK", strval)

	return
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Zeros statistics counters.
// - Sets EIP and ESP to origin.
func (cpu *Cpu) Reset(origin uint32) {
	if cpu.Verbose {
		log.Printf("cpu: reset, origin 0x%08x", origin)
	}

	clear(cpu.Register[:])
	cpu.Eflags = 0
	cpu.Memory.Reset()
	cpu.Halted = false
	cpu.Ticks = 0

	cpu.Eip = origin
	cpu.WriteRegister(REG_ESP, origin)
}

// Tick executes a single instruction.
// On a fault Eip is left at the faulting instruction, and the returned
// error is an *ErrFault.
func (cpu *Cpu) Tick() (err error) {
	eip := cpu.Eip

	op, err := cpu.Memory.Read8(eip)
	if err != nil {
		err = &ErrFault{Eip: eip, Err: err}
		return
	}

	err = cpu.Execute(op)
	if err != nil {
		cpu.Eip = eip
		err = &ErrFault{Eip: eip, Opcode: op, Err: err}
		return
	}

	cpu.Ticks += 1

	return
}

// Execute dispatches an opcode byte, with Eip at that byte.
func (cpu *Cpu) Execute(op byte) (err error) {
	inst := _opcodes[op]

	if cpu.Verbose {
		log.Printf("%08x: %02x %v", cpu.Eip, op, inst)
	}

	if inst.Exec == nil {
		err = &ErrOpcode{Opcode: op}
		return
	}

	return inst.Exec(cpu, op)
}
