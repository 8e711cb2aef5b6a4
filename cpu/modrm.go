package cpu

// ModMode is the two bit 'mod' field of a ModRM byte.
type ModMode int

//go:generate go tool stringer -linecomment -type=ModMode
const (
	MOD_INDIRECT = ModMode(0) // ind
	MOD_DISP8    = ModMode(1) // disp8
	MOD_DISP32   = ModMode(2) // disp32
	MOD_REGISTER = ModMode(3) // reg
)

const (
	RM_SIB    = 4 // rm value signalling a SIB byte when mod != 3
	RM_DISP32 = 5 // rm value for absolute disp32 when mod == 0
)

// DispKind identifies which displacement a ModRM carries.
type DispKind int

const (
	DISP_NONE = DispKind(iota)
	DISP_8
	DISP_32
)

// ModRM is a decoded addressing descriptor.
//
// Reg is dual purpose. For '/r' instructions (01, 03, 29, 2B, 39, 3B, 89,
// 8B) it is the register operand. For the opcode groups (81, 83, 8F, C7, FF)
// it is the sub-opcode selector.
type ModRM struct {
	Mod    ModMode
	Reg    uint8
	Rm     uint8
	Sib    uint8
	HasSib bool
	Disp8  int8
	Disp32 uint32
}

// MakeModRM decodes the fields of a ModRM byte, without displacement.
func MakeModRM(code uint8) (modrm ModRM) {
	modrm.Mod = ModMode((code >> 6) & 0x3)
	modrm.Reg = (code >> 3) & 0x7
	modrm.Rm = (code >> 0) & 0x7
	return
}

// Byte re-encodes the ModRM byte.
func (modrm ModRM) Byte() uint8 {
	return (uint8(modrm.Mod) << 6) | ((modrm.Reg & 0x7) << 3) | (modrm.Rm & 0x7)
}

// Displacement returns which displacement the mode populates.
func (modrm ModRM) Displacement() DispKind {
	switch {
	case modrm.Mod == MOD_INDIRECT && modrm.Rm == RM_DISP32:
		return DISP_32
	case modrm.Mod == MOD_DISP8:
		return DISP_8
	case modrm.Mod == MOD_DISP32:
		return DISP_32
	}
	return DISP_NONE
}

// Length is the number of bytes the ModRM form occupies.
func (modrm ModRM) Length() (size uint32) {
	size = 1
	if modrm.HasSib {
		size++
	}
	switch modrm.Displacement() {
	case DISP_8:
		size += 1
	case DISP_32:
		size += 4
	}
	return
}

// DecodeModRM decodes the ModRM byte, and any SIB and displacement bytes,
// at Eip and advances Eip past them.
func (cpu *Cpu) DecodeModRM() (modrm ModRM, err error) {
	eip := cpu.Eip

	code, err := cpu.Memory.Read8(eip)
	if err != nil {
		return
	}
	modrm = MakeModRM(code)
	eip++

	if modrm.Mod != MOD_REGISTER && modrm.Rm == RM_SIB {
		modrm.Sib, err = cpu.Memory.Read8(eip)
		if err != nil {
			return
		}
		modrm.HasSib = true
		eip++
	}

	switch modrm.Displacement() {
	case DISP_8:
		var disp uint8
		disp, err = cpu.Memory.Read8(eip)
		if err != nil {
			return
		}
		modrm.Disp8 = int8(disp)
	case DISP_32:
		modrm.Disp32, err = cpu.Memory.Read32(eip)
		if err != nil {
			return
		}
	}

	cpu.Eip += modrm.Length()

	return
}

// EffectiveAddress computes the memory address of a non-register ModRM.
// Address arithmetic wraps around.
func (cpu *Cpu) EffectiveAddress(modrm ModRM) (address uint32, err error) {
	if modrm.HasSib {
		// Scaled index addressing is not implemented.
		err = &ErrModRM{ModRM: modrm}
		return
	}

	switch modrm.Mod {
	case MOD_INDIRECT:
		if modrm.Rm == RM_DISP32 {
			address = modrm.Disp32
		} else {
			address = cpu.ReadRegister(CodeReg(modrm.Rm))
		}
	case MOD_DISP8:
		address = cpu.ReadRegister(CodeReg(modrm.Rm)) + uint32(int32(modrm.Disp8))
	case MOD_DISP32:
		address = cpu.ReadRegister(CodeReg(modrm.Rm)) + modrm.Disp32
	default:
		err = &ErrModRM{ModRM: modrm}
	}

	return
}

// ReadRM32 reads the r/m32 operand.
func (cpu *Cpu) ReadRM32(modrm ModRM) (value uint32, err error) {
	if modrm.Mod == MOD_REGISTER {
		value = cpu.ReadRegister(CodeReg(modrm.Rm))
		return
	}

	address, err := cpu.EffectiveAddress(modrm)
	if err != nil {
		return
	}

	return cpu.Memory.Read32(address)
}

// WriteRM32 writes the r/m32 operand.
func (cpu *Cpu) WriteRM32(modrm ModRM, value uint32) (err error) {
	if modrm.Mod == MOD_REGISTER {
		cpu.WriteRegister(CodeReg(modrm.Rm), value)
		return
	}

	address, err := cpu.EffectiveAddress(modrm)
	if err != nil {
		return
	}

	return cpu.Memory.Write32(address, value)
}

// ReadR32 reads the register selected by the reg field.
func (cpu *Cpu) ReadR32(modrm ModRM) uint32 {
	return cpu.ReadRegister(CodeReg(modrm.Reg))
}

// WriteR32 writes the register selected by the reg field.
func (cpu *Cpu) WriteR32(modrm ModRM, value uint32) {
	cpu.WriteRegister(CodeReg(modrm.Reg), value)
}
