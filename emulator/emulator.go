// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/x86emu/cpu"
	"github.com/ezrec/x86emu/internal"
	"github.com/ezrec/x86emu/rom"
)

const (
	LOAD_OFFSET = 0x7c00 // Address the boot image is loaded at.
	STACK_TOP   = LOAD_OFFSET
)

var _emulator_defines = map[string]string{
	"LOAD_OFFSET": fmt.Sprintf("%#x", LOAD_OFFSET),
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
}

// Emulator state. CPU + boot image.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Rom      rom.Rom      // Boot image.

	end uint32 // First address past the loaded image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(cpu.MEMORY_SIZE),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator, and load the boot image.
// If a program listing is present, the boot image is built from it.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Program.Opcodes) > 0 {
		origin := emu.Program.Origin()
		if origin != LOAD_OFFSET {
			err = &ErrOrigin{Origin: origin}
			return
		}
		emu.Rom.Data = emu.Program.Binary()
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset(LOAD_OFFSET)

	err = emu.Cpu.Memory.Load(LOAD_OFFSET, emu.Rom.Data)
	if err != nil {
		return
	}

	emu.end = LOAD_OFFSET + emu.Rom.Size()

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes at 0x%08x", emu.Rom.Size(), uint32(LOAD_OFFSET))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() uint32 {
	return emu.Cpu.Eip
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Eip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Done is true once execution has halted, or has run off the end of the
// boot image.
func (emu *Emulator) Done() bool {
	return emu.Cpu.Halted || emu.Cpu.Eip >= emu.end
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Done() {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
		return
	}

	done = emu.Done()

	return
}

// Run ticks the emulator until it is done, or faults.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, eip 0x%08x", emu.Ticks(), emu.Ip())
	}

	return
}

// Dump writes the register file, then the instruction pointer in decimal.
func (emu *Emulator) Dump(w io.Writer) (err error) {
	for reg := cpu.REG_EAX; reg < cpu.REGISTERS_COUNT; reg++ {
		_, err = fmt.Fprintf(w, "%s = %08x\n", reg, emu.Cpu.ReadRegister(reg))
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(w, "EIP = %d\n", emu.Cpu.Eip)

	return
}
