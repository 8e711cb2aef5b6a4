package cpu

import (
	"errors"

	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

var (
	// Cpu faults
	ErrDecode          = errors.New(f("decode fault"))
	ErrDispatch        = errors.New(f("dispatch fault"))
	ErrMemoryBounds    = errors.New(f("memory out of bounds"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrImageSize       = errors.New(f("image too large"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrOpcode is a dispatch fault on an opcode byte with no handler.
type ErrOpcode struct {
	Opcode byte
}

func (err *ErrOpcode) Error() string {
	return f("opcode 0x%02x not implemented", err.Opcode)
}

func (err *ErrOpcode) Unwrap() error {
	return ErrDispatch
}

// ErrOpcodeGroup is a dispatch fault on an unknown sub-opcode (the ModRM
// reg field) of an opcode group.
type ErrOpcodeGroup struct {
	Opcode byte
	Sub    uint8
}

func (err *ErrOpcodeGroup) Error() string {
	return f("opcode 0x%02x /%d not implemented", err.Opcode, err.Sub)
}

func (err *ErrOpcodeGroup) Unwrap() error {
	return ErrDispatch
}

// ErrModRM is a decode fault on an addressing form that is not supported.
type ErrModRM struct {
	ModRM ModRM
}

func (err *ErrModRM) Error() string {
	return f("modrm mod=%d rm=%d sib=0x%02x not implemented", int(err.ModRM.Mod), err.ModRM.Rm, err.ModRM.Sib)
}

func (err *ErrModRM) Unwrap() error {
	return ErrDecode
}

// ErrMemory is an access outside of memory.
type ErrMemory struct {
	Address uint32
	Size    int
}

func (err *ErrMemory) Error() string {
	return f("memory access of %d bytes at 0x%08x out of bounds", err.Size, err.Address)
}

func (err *ErrMemory) Unwrap() error {
	return ErrMemoryBounds
}

// ErrFault locates a fault at the first byte of the faulting instruction.
type ErrFault struct {
	Eip    uint32
	Opcode byte
	Err    error
}

func (err *ErrFault) Error() string {
	return f("eip 0x%08x (opcode 0x%02x): %v", err.Eip, err.Opcode, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrJumpRange is a short jump whose target does not fit a signed byte.
type ErrJumpRange struct {
	Label    string
	Distance int64
}

func (err ErrJumpRange) Error() string {
	return f("label %v out of short jump range (%d)", err.Label, err.Distance)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a register, memory or immediate operand", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
