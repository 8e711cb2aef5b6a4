package emulator

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/x86emu/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.Equal(uint32(cpu.MEMORY_SIZE), emu.Cpu.Memory.Size())

	defines := maps.Collect(emu.Defines())
	assert.Equal("0x7c00", defines["LOAD_OFFSET"])
	assert.Equal("0x7c00", defines["STACK_TOP"])
	assert.Equal("0x100000", defines["MEMORY_SIZE"])
}

// assemble builds a program the way the command line does.
func assemble(emu *Emulator, program []string, t *testing.T) {
	asm := &cpu.Assembler{Origin: LOAD_OFFSET}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}
}

func dump(emu *Emulator) string {
	var buff bytes.Buffer
	emu.Dump(&buff)
	return buff.String()
}

func TestEmulator_Single(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"mov eax, 0x10",
		"mov ebx, eax",
		"sub ebx, 4",
		"push ebx",
		"pop ecx",
		"inc ecx",
	}
	assemble(emu, program, t)

	last := len(emu.Program.Opcodes) - 1
	for n, op := range emu.Program.Opcodes {
		here := program[op.LineNo-1]
		assert.Equal(op.LineNo, emu.LineNo(), here)
		assert.Equal(op.Ip, emu.Ip(), here)
		done, err := emu.Tick()
		if !assert.NoError(err, here) {
			t.Fatal(emu.Cpu.String())
		}
		assert.Equal(n == last, done, here)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(6, emu.Ticks())
	assert.Equal(0, emu.LineNo())

	assert.Equal(uint32(0x10), emu.Cpu.ReadRegister(cpu.REG_EAX))
	assert.Equal(uint32(0x0c), emu.Cpu.ReadRegister(cpu.REG_EBX))
	assert.Equal(uint32(0x0d), emu.Cpu.ReadRegister(cpu.REG_ECX))
}

func TestEmulator_Loop(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assemble(emu, []string{
		"  mov ecx, 5",
		"  mov eax, 0",
		"loop:",
		"  add eax, ecx",
		"  sub ecx, 1",
		"  jnz loop",
	}, t)

	err := emu.Run()
	assert.NoError(err)

	expected := strings.Join([]string{
		"EAX = 0000000f",
		"ECX = 00000000",
		"EDX = 00000000",
		"EBX = 00000000",
		"ESP = 00007c00",
		"EBP = 00000000",
		"ESI = 00000000",
		"EDI = 00000000",
		"EIP = 31761",
		"",
	}, "\n")
	assert.Equal(expected, dump(emu))
	assert.True(emu.Cpu.Flag(cpu.FLAG_ZF))
}

func TestEmulator_Call(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assemble(emu, []string{
		"  push 7",
		"  call double",
		"  add esp, 4",
		"  cmp esp, STACK_TOP",
		"  jz done",
		"  hlt",
		"double:",
		"  push ebp",
		"  mov ebp, esp",
		"  mov eax, [ebp+8]",
		"  add eax, [ebp+8]",
		"  leave",
		"  ret",
		"done:",
	}, t)

	err := emu.Run()
	assert.NoError(err)
	assert.False(emu.Cpu.Halted)

	assert.Equal(uint32(14), emu.Cpu.ReadRegister(cpu.REG_EAX))
	assert.Equal(uint32(STACK_TOP), emu.Cpu.ReadRegister(cpu.REG_ESP))
	assert.Equal(uint32(0), emu.Cpu.ReadRegister(cpu.REG_EBP))
	assert.Equal(LOAD_OFFSET+emu.Rom.Size(), emu.Ip())
}

func TestEmulator_Halt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assemble(emu, []string{
		"mov eax, 1",
		"hlt",
		"mov eax, 2",
	}, t)

	err := emu.Run()
	assert.NoError(err)
	assert.True(emu.Cpu.Halted)
	assert.Equal(uint32(1), emu.Cpu.ReadRegister(cpu.REG_EAX))
	assert.Equal(uint32(LOAD_OFFSET+6), emu.Ip())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(2, emu.Ticks())
}

func TestEmulator_Fault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assemble(emu, []string{
		"mov eax, 1",
		".db 0x0f, 0x0b",
		"mov eax, 2",
	}, t)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrDispatch)

	var err_runtime *ErrRuntime
	if assert.True(errors.As(err, &err_runtime)) {
		assert.Equal(2, err_runtime.LineNo)
	}

	var err_fault *cpu.ErrFault
	if assert.True(errors.As(err, &err_fault)) {
		assert.Equal(uint32(LOAD_OFFSET+5), err_fault.Eip)
		assert.Equal(byte(0x0f), err_fault.Opcode)
	}

	var err_opcode *cpu.ErrOpcode
	assert.True(errors.As(err, &err_opcode))

	assert.Equal(uint32(1), emu.Cpu.ReadRegister(cpu.REG_EAX))
	assert.True(strings.HasSuffix(dump(emu), "EIP = 31749\n"))
}

func TestEmulator_Rom(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = []byte{
		0xb8, 0x02, 0x00, 0x00, 0x00, // mov eax, 2
		0x3d, 0x03, 0x00, 0x00, 0x00, // cmp eax, 3
		0x72, 0x01,                   // jb +1
		0x40,                         // inc eax
		0xff, 0xf8,                   // ff /7
	}

	assert.NoError(emu.Reset())

	err := emu.Run()
	var err_group *cpu.ErrOpcodeGroup
	if assert.True(errors.As(err, &err_group)) {
		assert.Equal(byte(0xff), err_group.Opcode)
		assert.Equal(uint8(7), err_group.Sub)
	}

	var err_runtime *ErrRuntime
	if assert.True(errors.As(err, &err_runtime)) {
		assert.Equal(0, err_runtime.LineNo)
	}

	assert.Equal(uint32(2), emu.Cpu.ReadRegister(cpu.REG_EAX))
	assert.Equal(uint32(LOAD_OFFSET+13), emu.Ip())
	assert.True(emu.Cpu.Flag(cpu.FLAG_CF))
}

func TestEmulator_Empty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, emu.Ticks())
	assert.True(strings.HasSuffix(dump(emu), "EIP = 31744\n"))
}

func TestEmulator_TooLarge(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = make([]byte, cpu.MEMORY_SIZE)

	err := emu.Reset()
	assert.ErrorIs(err, cpu.ErrImageSize)
}

func TestEmulator_Origin(t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{Origin: 0x1000}
	prog, err := asm.Parse(strings.NewReader("mov eax, here\nhere: hlt\n"))
	if !assert.NoError(err) {
		return
	}

	emu := NewEmulator()
	emu.Program = prog

	err = emu.Reset()
	var err_origin *ErrOrigin
	if assert.True(errors.As(err, &err_origin)) {
		assert.Equal(uint32(0x1000), err_origin.Origin)
	}
}
