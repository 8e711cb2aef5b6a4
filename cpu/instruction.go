package cpu

// Handlers are entered with Eip at the opcode byte, and leave Eip at the
// next instruction to execute. Register, flag and memory writes happen
// after every operand has been fetched, so a faulting instruction has
// no side effects beyond Eip, which Tick rewinds.

// code8 reads the instruction byte at Eip+index.
func (cpu *Cpu) code8(index uint32) (uint8, error) {
	return cpu.Memory.Read8(cpu.Eip + index)
}

// signCode8 reads the instruction byte at Eip+index, sign-extended.
func (cpu *Cpu) signCode8(index uint32) (value uint32, err error) {
	code, err := cpu.code8(index)
	value = uint32(int32(int8(code)))
	return
}

// code32 reads the 32-bit instruction word at Eip+index.
func (cpu *Cpu) code32(index uint32) (uint32, error) {
	return cpu.Memory.Read32(cpu.Eip + index)
}

// modrm skips the opcode byte and decodes the ModRM that follows.
func (cpu *Cpu) modrm() (ModRM, error) {
	cpu.Eip++
	return cpu.DecodeModRM()
}

// ADD r/m32, r32 (01 /r)
func (cpu *Cpu) addRM32R32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	return cpu.WriteRM32(modrm, rm32+cpu.ReadR32(modrm))
}

// ADD r32, r/m32 (03 /r)
func (cpu *Cpu) addR32RM32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	cpu.WriteR32(modrm, cpu.ReadR32(modrm)+rm32)
	return
}

// SUB r/m32, r32 (29 /r)
func (cpu *Cpu) subRM32R32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	r32 := cpu.ReadR32(modrm)
	result := rm32 - r32
	err = cpu.WriteRM32(modrm, result)
	if err != nil {
		return
	}
	cpu.updateFlagsSub(rm32, r32, result)
	return
}

// SUB r32, r/m32 (2B /r)
func (cpu *Cpu) subR32RM32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	r32 := cpu.ReadR32(modrm)
	result := r32 - rm32
	cpu.WriteR32(modrm, result)
	cpu.updateFlagsSub(r32, rm32, result)
	return
}

// CMP r/m32, r32 (39 /r)
func (cpu *Cpu) cmpRM32R32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	r32 := cpu.ReadR32(modrm)
	cpu.updateFlagsSub(rm32, r32, rm32-r32)
	return
}

// CMP r32, r/m32 (3B /r)
func (cpu *Cpu) cmpR32RM32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	r32 := cpu.ReadR32(modrm)
	cpu.updateFlagsSub(r32, rm32, r32-rm32)
	return
}

// CMP EAX, imm32 (3D id)
func (cpu *Cpu) cmpEaxImm32(op byte) (err error) {
	imm32, err := cpu.code32(1)
	if err != nil {
		return
	}
	eax := cpu.ReadRegister(REG_EAX)
	cpu.updateFlagsSub(eax, imm32, eax-imm32)
	cpu.Eip += 5
	return
}

// INC r32 (40+r). Flags are not updated.
func (cpu *Cpu) incR32(op byte) (err error) {
	reg := CodeReg(op - OP_INC_R32)
	cpu.WriteRegister(reg, cpu.ReadRegister(reg)+1)
	cpu.Eip += 1
	return
}

// PUSH r32 (50+r)
func (cpu *Cpu) pushR32(op byte) (err error) {
	reg := CodeReg(op - OP_PUSH_R32)
	err = cpu.Push32(cpu.ReadRegister(reg))
	if err != nil {
		return
	}
	cpu.Eip += 1
	return
}

// POP r32 (58+r)
func (cpu *Cpu) popR32(op byte) (err error) {
	reg := CodeReg(op - OP_POP_R32)
	value, err := cpu.Pop32()
	if err != nil {
		return
	}
	cpu.WriteRegister(reg, value)
	cpu.Eip += 1
	return
}

// PUSH imm32 (68 id)
func (cpu *Cpu) pushImm32(op byte) (err error) {
	value, err := cpu.code32(1)
	if err != nil {
		return
	}
	err = cpu.Push32(value)
	if err != nil {
		return
	}
	cpu.Eip += 5
	return
}

// PUSH imm8 (6A ib), sign-extended to 32 bits.
func (cpu *Cpu) pushImm8(op byte) (err error) {
	value, err := cpu.signCode8(1)
	if err != nil {
		return
	}
	err = cpu.Push32(value)
	if err != nil {
		return
	}
	cpu.Eip += 2
	return
}

// Condition evaluates a condition code against Eflags.
// Parity is not modelled, so COND_P and COND_NP are never true.
func (cpu *Cpu) Condition(cc CodeCond) (taken bool) {
	cf := cpu.Flag(FLAG_CF)
	zf := cpu.Flag(FLAG_ZF)
	sf := cpu.Flag(FLAG_SF)
	of := cpu.Flag(FLAG_OF)

	switch cc {
	case COND_O:
		taken = of
	case COND_NO:
		taken = !of
	case COND_B:
		taken = cf
	case COND_AE:
		taken = !cf
	case COND_E:
		taken = zf
	case COND_NE:
		taken = !zf
	case COND_BE:
		taken = cf || zf
	case COND_A:
		taken = !cf && !zf
	case COND_S:
		taken = sf
	case COND_NS:
		taken = !sf
	case COND_L:
		taken = sf != of
	case COND_GE:
		taken = sf == of
	case COND_LE:
		taken = zf || (sf != of)
	case COND_G:
		taken = !zf && (sf == of)
	}

	return
}

// Jcc rel8 (70+cc cb)
func (cpu *Cpu) jccRel8(op byte) (err error) {
	diff, err := cpu.signCode8(1)
	if err != nil {
		return
	}
	if cpu.Condition(CodeCond(op - OP_JCC_REL8)) {
		cpu.Eip += diff + 2
	} else {
		cpu.Eip += 2
	}
	return
}

// groupDispatch decodes the ModRM of an opcode group, and dispatches on
// its reg field.
func (cpu *Cpu) groupDispatch(op byte, group *[8]groupInstruction) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}

	sub := group[modrm.Reg]
	if sub.Exec == nil {
		err = &ErrOpcodeGroup{Opcode: op, Sub: modrm.Reg}
		return
	}

	return sub.Exec(cpu, op, modrm)
}

// 0x81 /n id, 0x83 /n ib
func (cpu *Cpu) groupArith(op byte) error {
	return cpu.groupDispatch(op, &_group_arith)
}

// 0x8F /0
func (cpu *Cpu) groupPop(op byte) error {
	return cpu.groupDispatch(op, &_group_pop)
}

// 0xC7 /0
func (cpu *Cpu) groupMov(op byte) error {
	return cpu.groupDispatch(op, &_group_mov)
}

// 0xFF /n
func (cpu *Cpu) groupFF(op byte) error {
	return cpu.groupDispatch(op, &_group_ff)
}

// immediate reads the immediate following the ModRM of the 0x81 (imm32)
// and 0x83 (sign-extended imm8) groups, and advances Eip past it.
func (cpu *Cpu) immediate(op byte) (value uint32, err error) {
	if op == OP_GROUP_IMM8 {
		value, err = cpu.signCode8(0)
		if err != nil {
			return
		}
		cpu.Eip += 1
		return
	}

	value, err = cpu.code32(0)
	if err != nil {
		return
	}
	cpu.Eip += 4
	return
}

// ADD r/m32, imm (81 /0 id, 83 /0 ib). Flags are not updated.
func (cpu *Cpu) addRM32Imm(op byte, modrm ModRM) (err error) {
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	imm, err := cpu.immediate(op)
	if err != nil {
		return
	}
	return cpu.WriteRM32(modrm, rm32+imm)
}

// SUB r/m32, imm (81 /5 id, 83 /5 ib)
func (cpu *Cpu) subRM32Imm(op byte, modrm ModRM) (err error) {
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	imm, err := cpu.immediate(op)
	if err != nil {
		return
	}
	result := rm32 - imm
	err = cpu.WriteRM32(modrm, result)
	if err != nil {
		return
	}
	cpu.updateFlagsSub(rm32, imm, result)
	return
}

// CMP r/m32, imm (81 /7 id, 83 /7 ib)
func (cpu *Cpu) cmpRM32Imm(op byte, modrm ModRM) (err error) {
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	imm, err := cpu.immediate(op)
	if err != nil {
		return
	}
	cpu.updateFlagsSub(rm32, imm, rm32-imm)
	return
}

// MOV r/m32, r32 (89 /r)
func (cpu *Cpu) movRM32R32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	return cpu.WriteRM32(modrm, cpu.ReadR32(modrm))
}

// MOV r32, r/m32 (8B /r)
func (cpu *Cpu) movR32RM32(op byte) (err error) {
	modrm, err := cpu.modrm()
	if err != nil {
		return
	}
	rm32, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	cpu.WriteR32(modrm, rm32)
	return
}

// POP r/m32 (8F /0)
func (cpu *Cpu) popRM32(op byte, modrm ModRM) (err error) {
	value, err := cpu.Peek32()
	if err != nil {
		return
	}
	esp := cpu.ReadRegister(REG_ESP)
	cpu.WriteRegister(REG_ESP, esp+4)
	err = cpu.WriteRM32(modrm, value)
	if err != nil {
		cpu.WriteRegister(REG_ESP, esp)
	}
	return
}

// NOP (90)
func (cpu *Cpu) nop(op byte) (err error) {
	cpu.Eip += 1
	return
}

// MOV r32, imm32 (B8+r id)
func (cpu *Cpu) movR32Imm32(op byte) (err error) {
	value, err := cpu.code32(1)
	if err != nil {
		return
	}
	cpu.WriteRegister(CodeReg(op-OP_MOV_R32_IMM32), value)
	cpu.Eip += 5
	return
}

// RET (C3)
func (cpu *Cpu) ret(op byte) (err error) {
	target, err := cpu.Pop32()
	if err != nil {
		return
	}
	cpu.Eip = target
	return
}

// MOV r/m32, imm32 (C7 /0 id)
func (cpu *Cpu) movRM32Imm32(op byte, modrm ModRM) (err error) {
	value, err := cpu.code32(0)
	if err != nil {
		return
	}
	cpu.Eip += 4
	return cpu.WriteRM32(modrm, value)
}

// LEAVE (C9): ESP = EBP, then pop EBP.
func (cpu *Cpu) leave(op byte) (err error) {
	ebp := cpu.ReadRegister(REG_EBP)
	value, err := cpu.Memory.Read32(ebp)
	if err != nil {
		return
	}
	cpu.WriteRegister(REG_ESP, ebp+4)
	cpu.WriteRegister(REG_EBP, value)
	cpu.Eip += 1
	return
}

// CALL rel32 (E8 cd)
func (cpu *Cpu) callRel32(op byte) (err error) {
	diff, err := cpu.code32(1)
	if err != nil {
		return
	}
	next := cpu.Eip + 5
	err = cpu.Push32(next)
	if err != nil {
		return
	}
	cpu.Eip = next + diff
	return
}

// JMP rel32 (E9 cd)
func (cpu *Cpu) jmpRel32(op byte) (err error) {
	diff, err := cpu.code32(1)
	if err != nil {
		return
	}
	cpu.Eip += diff + 5
	return
}

// JMP rel8 (EB cb)
func (cpu *Cpu) jmpRel8(op byte) (err error) {
	diff, err := cpu.signCode8(1)
	if err != nil {
		return
	}
	cpu.Eip += diff + 2
	return
}

// HLT (F4)
func (cpu *Cpu) hlt(op byte) (err error) {
	cpu.Halted = true
	cpu.Eip += 1
	return
}

// INC r/m32 (FF /0). Flags are not updated.
func (cpu *Cpu) incRM32(op byte, modrm ModRM) (err error) {
	value, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	return cpu.WriteRM32(modrm, value+1)
}

// CALL r/m32 (FF /2)
func (cpu *Cpu) callRM32(op byte, modrm ModRM) (err error) {
	target, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	err = cpu.Push32(cpu.Eip)
	if err != nil {
		return
	}
	cpu.Eip = target
	return
}

// JMP r/m32 (FF /4)
func (cpu *Cpu) jmpRM32(op byte, modrm ModRM) (err error) {
	target, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	cpu.Eip = target
	return
}

// PUSH r/m32 (FF /6)
func (cpu *Cpu) pushRM32(op byte, modrm ModRM) (err error) {
	value, err := cpu.ReadRM32(modrm)
	if err != nil {
		return
	}
	return cpu.Push32(value)
}
