package cpu

// CodeCond is a condition code, the low nibble of a Jcc opcode.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_O  = CodeCond(0x0) // o
	COND_NO = CodeCond(0x1) // no
	COND_B  = CodeCond(0x2) // b
	COND_AE = CodeCond(0x3) // ae
	COND_E  = CodeCond(0x4) // e
	COND_NE = CodeCond(0x5) // ne
	COND_BE = CodeCond(0x6) // be
	COND_A  = CodeCond(0x7) // a
	COND_S  = CodeCond(0x8) // s
	COND_NS = CodeCond(0x9) // ns
	COND_P  = CodeCond(0xa) // p
	COND_NP = CodeCond(0xb) // np
	COND_L  = CodeCond(0xc) // l
	COND_GE = CodeCond(0xd) // ge
	COND_LE = CodeCond(0xe) // le
	COND_G  = CodeCond(0xf) // g
)

// CodeArith is the sub-opcode of the 0x81 and 0x83 immediate groups.
type CodeArith int

//go:generate go tool stringer -linecomment -type=CodeArith
const (
	ARITH_ADD = CodeArith(0) // add
	ARITH_OR  = CodeArith(1) // or
	ARITH_ADC = CodeArith(2) // adc
	ARITH_SBB = CodeArith(3) // sbb
	ARITH_AND = CodeArith(4) // and
	ARITH_SUB = CodeArith(5) // sub
	ARITH_XOR = CodeArith(6) // xor
	ARITH_CMP = CodeArith(7) // cmp
)

// CodeGroupFF is the sub-opcode of the 0xFF group.
type CodeGroupFF int

//go:generate go tool stringer -linecomment -type=CodeGroupFF
const (
	FF_INC   = CodeGroupFF(0) // inc
	FF_DEC   = CodeGroupFF(1) // dec
	FF_CALL  = CodeGroupFF(2) // call
	FF_CALLF = CodeGroupFF(3) // callf
	FF_JMP   = CodeGroupFF(4) // jmp
	FF_JMPF  = CodeGroupFF(5) // jmpf
	FF_PUSH  = CodeGroupFF(6) // push
)

// Opcode bytes.
const (
	OP_ADD_RM32_R32  = 0x01
	OP_ADD_R32_RM32  = 0x03
	OP_SUB_RM32_R32  = 0x29
	OP_SUB_R32_RM32  = 0x2B
	OP_CMP_RM32_R32  = 0x39
	OP_CMP_R32_RM32  = 0x3B
	OP_CMP_EAX_IMM32 = 0x3D
	OP_INC_R32       = 0x40 // +r
	OP_PUSH_R32      = 0x50 // +r
	OP_POP_R32       = 0x58 // +r
	OP_PUSH_IMM32    = 0x68
	OP_PUSH_IMM8     = 0x6A
	OP_JCC_REL8      = 0x70 // +cc
	OP_GROUP_IMM32   = 0x81
	OP_GROUP_IMM8    = 0x83
	OP_MOV_RM32_R32  = 0x89
	OP_MOV_R32_RM32  = 0x8B
	OP_GROUP_POP     = 0x8F
	OP_NOP           = 0x90
	OP_MOV_R32_IMM32 = 0xB8 // +r
	OP_RET           = 0xC3
	OP_GROUP_MOV     = 0xC7
	OP_LEAVE         = 0xC9
	OP_CALL_REL32    = 0xE8
	OP_JMP_REL32     = 0xE9
	OP_JMP_REL8      = 0xEB
	OP_HLT           = 0xF4
	OP_GROUP_FF      = 0xFF
)

// Instruction is an entry of the opcode dispatch table.
// A nil Exec marks an unimplemented opcode.
type Instruction struct {
	Mnemonic string
	Exec     func(cpu *Cpu, op byte) error
}

func (inst Instruction) String() string {
	if inst.Exec == nil {
		return "(bad)"
	}
	return inst.Mnemonic
}

// groupInstruction is an entry of an opcode group, selected by the
// ModRM reg field.
type groupInstruction struct {
	Mnemonic string
	Exec     func(cpu *Cpu, op byte, modrm ModRM) error
}

var (
	_opcodes     [256]Instruction
	_group_arith [8]groupInstruction // 0x81, 0x83
	_group_pop   [8]groupInstruction // 0x8F
	_group_mov   [8]groupInstruction // 0xC7
	_group_ff    [8]groupInstruction // 0xFF
)

func init() {
	_group_arith[ARITH_ADD] = groupInstruction{ARITH_ADD.String(), (*Cpu).addRM32Imm}
	_group_arith[ARITH_SUB] = groupInstruction{ARITH_SUB.String(), (*Cpu).subRM32Imm}
	_group_arith[ARITH_CMP] = groupInstruction{ARITH_CMP.String(), (*Cpu).cmpRM32Imm}

	_group_pop[0] = groupInstruction{"pop", (*Cpu).popRM32}

	_group_mov[0] = groupInstruction{"mov", (*Cpu).movRM32Imm32}

	_group_ff[FF_INC] = groupInstruction{FF_INC.String(), (*Cpu).incRM32}
	_group_ff[FF_CALL] = groupInstruction{FF_CALL.String(), (*Cpu).callRM32}
	_group_ff[FF_JMP] = groupInstruction{FF_JMP.String(), (*Cpu).jmpRM32}
	_group_ff[FF_PUSH] = groupInstruction{FF_PUSH.String(), (*Cpu).pushRM32}

	_opcodes[OP_ADD_RM32_R32] = Instruction{"add", (*Cpu).addRM32R32}
	_opcodes[OP_ADD_R32_RM32] = Instruction{"add", (*Cpu).addR32RM32}
	_opcodes[OP_SUB_RM32_R32] = Instruction{"sub", (*Cpu).subRM32R32}
	_opcodes[OP_SUB_R32_RM32] = Instruction{"sub", (*Cpu).subR32RM32}
	_opcodes[OP_CMP_RM32_R32] = Instruction{"cmp", (*Cpu).cmpRM32R32}
	_opcodes[OP_CMP_R32_RM32] = Instruction{"cmp", (*Cpu).cmpR32RM32}
	_opcodes[OP_CMP_EAX_IMM32] = Instruction{"cmp", (*Cpu).cmpEaxImm32}

	for reg := range REGISTERS_COUNT {
		_opcodes[OP_INC_R32+reg] = Instruction{"inc", (*Cpu).incR32}
		_opcodes[OP_PUSH_R32+reg] = Instruction{"push", (*Cpu).pushR32}
		_opcodes[OP_POP_R32+reg] = Instruction{"pop", (*Cpu).popR32}
		_opcodes[OP_MOV_R32_IMM32+reg] = Instruction{"mov", (*Cpu).movR32Imm32}
	}

	_opcodes[OP_PUSH_IMM32] = Instruction{"push", (*Cpu).pushImm32}
	_opcodes[OP_PUSH_IMM8] = Instruction{"push", (*Cpu).pushImm8}

	for cc := COND_O; cc <= COND_G; cc++ {
		if cc == COND_P || cc == COND_NP {
			// Parity is not modelled.
			continue
		}
		_opcodes[OP_JCC_REL8+int(cc)] = Instruction{"j" + cc.String(), (*Cpu).jccRel8}
	}

	_opcodes[OP_GROUP_IMM32] = Instruction{"grp1", (*Cpu).groupArith}
	_opcodes[OP_GROUP_IMM8] = Instruction{"grp1", (*Cpu).groupArith}
	_opcodes[OP_MOV_RM32_R32] = Instruction{"mov", (*Cpu).movRM32R32}
	_opcodes[OP_MOV_R32_RM32] = Instruction{"mov", (*Cpu).movR32RM32}
	_opcodes[OP_GROUP_POP] = Instruction{"grp1a", (*Cpu).groupPop}
	_opcodes[OP_NOP] = Instruction{"nop", (*Cpu).nop}
	_opcodes[OP_RET] = Instruction{"ret", (*Cpu).ret}
	_opcodes[OP_GROUP_MOV] = Instruction{"grp11", (*Cpu).groupMov}
	_opcodes[OP_LEAVE] = Instruction{"leave", (*Cpu).leave}
	_opcodes[OP_CALL_REL32] = Instruction{"call", (*Cpu).callRel32}
	_opcodes[OP_JMP_REL32] = Instruction{"jmp", (*Cpu).jmpRel32}
	_opcodes[OP_JMP_REL8] = Instruction{"jmp", (*Cpu).jmpRel8}
	_opcodes[OP_HLT] = Instruction{"hlt", (*Cpu).hlt}
	_opcodes[OP_GROUP_FF] = Instruction{"grp5", (*Cpu).groupFF}
}

// Lookup returns the dispatch table entry for an opcode byte.
func Lookup(op byte) Instruction {
	return _opcodes[op]
}
