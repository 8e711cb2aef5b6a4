// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"MEMORY_SIZE": fmt.Sprintf("%#x", MEMORY_SIZE),
}

// Assembler is a single pass macro assembler for the 32-bit x86
// instructions the Cpu implements.
//
// Syntax is Intel order, 'mnemonic dst, src'. Memory operands are
// written without spaces: [ebp], [ebp-8], [esi+0x10], [0x7000].
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Origin  uint32   // Address of the first assembled byte.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]uint32   // Map of jump labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap is a map of register names to register indexes.
var regMap = map[string]CodeReg{
	"eax": REG_EAX,
	"ecx": REG_ECX,
	"edx": REG_EDX,
	"ebx": REG_EBX,
	"esp": REG_ESP,
	"ebp": REG_EBP,
	"esi": REG_ESI,
	"edi": REG_EDI,
}

// jccMap maps conditional jump mnemonics, including aliases.
var jccMap = map[string]CodeCond{
	"jo":   COND_O,
	"jno":  COND_NO,
	"jb":   COND_B,
	"jc":   COND_B,
	"jnae": COND_B,
	"jae":  COND_AE,
	"jnb":  COND_AE,
	"jnc":  COND_AE,
	"je":   COND_E,
	"jz":   COND_E,
	"jne":  COND_NE,
	"jnz":  COND_NE,
	"jbe":  COND_BE,
	"jna":  COND_BE,
	"ja":   COND_A,
	"jnbe": COND_A,
	"js":   COND_S,
	"jns":  COND_NS,
	"jl":   COND_L,
	"jnge": COND_L,
	"jge":  COND_GE,
	"jnl":  COND_GE,
	"jle":  COND_LE,
	"jng":  COND_LE,
	"jg":   COND_G,
	"jnle": COND_G,
}

// arithMap maps the two-operand arithmetic mnemonics to their encodings.
var arithMap = map[string](struct {
	rmR   byte      // op r/m32, r32
	rRm   byte      // op r32, r/m32
	arith CodeArith // 0x81/0x83 sub-opcode
}){
	"add": {OP_ADD_RM32_R32, OP_ADD_R32_RM32, ARITH_ADD},
	"sub": {OP_SUB_RM32_R32, OP_SUB_R32_RM32, ARITH_SUB},
	"cmp": {OP_CMP_RM32_R32, OP_CMP_R32_RM32, ARITH_CMP},
}

// implied maps the operand-less mnemonics to their opcode.
var implied = map[string]byte{
	"nop":   OP_NOP,
	"ret":   OP_RET,
	"leave": OP_LEAVE,
	"hlt":   OP_HLT,
}

var reLabel = regexp.MustCompile(`^[A-Za-z_.@][A-Za-z0-9_.@]*$`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	invert := false
	if len(word) > 0 && word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)

	if invert {
		value = ^value
	}

	return
}

// number returns the value of a word, resolving equates.
func (asm *Assembler) number(word string) (value uint32, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}
	return asm.valueOf(word)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeUint64(uint64(value32))
	}
	err = nil
	for key, addr := range asm.Label {
		if reLabel.MatchString(key) && !strings.ContainsAny(key, ".@") {
			pred[key] = starlark.MakeUint64(uint64(addr))
		}
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]uint32, 16)
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		// '@' is unique to each expansion.
		local := fmt.Sprintf("%v_%v_", name, lineno)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, macro.LineNo+n)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentIp gets the address of the next assembled byte.
func (asm *Assembler) currentIp() uint32 {
	if len(asm.Opcode) == 0 {
		return asm.Origin
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + uint32(len(last.Codes))
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	asm.Equate["ORIGIN"] = fmt.Sprintf("%#x", asm.Origin)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if op.Link == LINK_NONE {
			continue
		}

		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		err = asm.link(op)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// link patches the label reference of an opcode.
func (asm *Assembler) link(op *Opcode) (err error) {
	label := op.LinkLabel
	target, ok := asm.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	next := op.Ip + uint32(len(op.Codes))

	switch op.Link {
	case LINK_REL8:
		if len(op.Codes) < 2 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, op.LineNo, op.Words)
		}
		distance := int64(target) - int64(next)
		if distance < -128 || distance > 127 {
			err = ErrJumpRange{Label: label, Distance: distance}
			return
		}
		op.Codes[len(op.Codes)-1] = byte(int8(distance))
	case LINK_REL32:
		if len(op.Codes) < 5 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, op.LineNo, op.Words)
		}
		binary.LittleEndian.PutUint32(op.Codes[len(op.Codes)-4:], target-next)
	case LINK_ABS32:
		if len(op.Codes) < 5 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, op.LineNo, op.Words)
		}
		binary.LittleEndian.PutUint32(op.Codes[len(op.Codes)-4:], target)
	}

	return
}

// operandKind classifies an instruction operand.
type operandKind int

const (
	OPERAND_REG = operandKind(iota)
	OPERAND_MEM
	OPERAND_IMM
	OPERAND_LABEL
)

// operand is a parsed instruction operand.
type operand struct {
	kind    operandKind
	reg     CodeReg // OPERAND_REG register, or OPERAND_MEM base.
	hasBase bool    // OPERAND_MEM has a base register.
	value   uint32  // OPERAND_IMM value, or OPERAND_MEM displacement.
	label   string  // OPERAND_LABEL name.
}

// isImm8 is true for an immediate that survives sign-extension from 8 bits.
func (opr operand) isImm8() bool {
	return opr.kind == OPERAND_IMM && int32(opr.value) >= -128 && int32(opr.value) <= 127
}

// parseOperand parses a register, memory, immediate or label operand.
func (asm *Assembler) parseOperand(word string) (opr operand, err error) {
	reg, ok := regMap[word]
	if ok {
		opr = operand{kind: OPERAND_REG, reg: reg}
		return
	}

	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		return asm.parseMemory(word)
	}

	value, err := asm.number(word)
	if err == nil {
		opr = operand{kind: OPERAND_IMM, value: value}
		return
	}

	if reLabel.MatchString(word) {
		opr = operand{kind: OPERAND_LABEL, label: word}
		err = nil
		return
	}

	err = ErrParseOperand(word)
	return
}

// parseMemory parses [base], [base+disp], [base-disp] and [disp].
func (asm *Assembler) parseMemory(word string) (opr operand, err error) {
	inner := word[1 : len(word)-1]
	opr.kind = OPERAND_MEM

	split := strings.IndexAny(inner[min(1, len(inner)):], "+-")
	if split >= 0 {
		split += min(1, len(inner))
	}

	term := inner
	if split >= 0 {
		term = inner[:split]
	}

	reg, ok := regMap[term]
	if !ok {
		// Absolute address.
		opr.value, err = asm.number(inner)
		if err != nil {
			err = ErrParseOperand(word)
		}
		return
	}

	opr.reg = reg
	opr.hasBase = true

	if split < 0 {
		return
	}

	disp, err := asm.number(inner[split+1:])
	if err != nil {
		err = ErrParseOperand(word)
		return
	}
	if inner[split] == '-' {
		disp = -disp
	}
	opr.value = disp

	return
}

// encodeModRM encodes the ModRM (and SIB and displacement) bytes for a
// reg field and an r/m operand.
func encodeModRM(reg uint8, rm operand) (codes []byte, err error) {
	switch rm.kind {
	case OPERAND_REG:
		modrm := ModRM{Mod: MOD_REGISTER, Reg: reg, Rm: uint8(rm.reg)}
		codes = []byte{modrm.Byte()}
	case OPERAND_MEM:
		if !rm.hasBase {
			modrm := ModRM{Mod: MOD_INDIRECT, Reg: reg, Rm: RM_DISP32}
			codes = binary.LittleEndian.AppendUint32([]byte{modrm.Byte()}, rm.value)
			return
		}
		modrm := ModRM{Reg: reg, Rm: uint8(rm.reg)}
		disp := int32(rm.value)
		switch {
		case disp == 0 && rm.reg != REG_EBP:
			modrm.Mod = MOD_INDIRECT
		case disp >= -128 && disp <= 127:
			modrm.Mod = MOD_DISP8
		default:
			modrm.Mod = MOD_DISP32
		}
		codes = []byte{modrm.Byte()}
		if rm.reg == REG_ESP {
			// [esp] can only be encoded with a SIB byte.
			codes = append(codes, 0x24)
		}
		switch modrm.Mod {
		case MOD_DISP8:
			codes = append(codes, byte(int8(disp)))
		case MOD_DISP32:
			codes = binary.LittleEndian.AppendUint32(codes, rm.value)
		}
	default:
		err = ErrOperandInvalid
	}

	return
}

// makeModRM builds 'opcode modrm... imm...'.
func makeModRM(op byte, reg uint8, rm operand, imms ...byte) (codes []byte, err error) {
	modrm, err := encodeModRM(reg, rm)
	if err != nil {
		return
	}
	codes = append([]byte{op}, modrm...)
	codes = append(codes, imms...)
	return
}

// imm32 encodes a little-endian 32-bit immediate.
func imm32(value uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, value)
}

// isRM is true for a register or memory operand.
func isRM(opr operand) bool {
	return opr.kind == OPERAND_REG || opr.kind == OPERAND_MEM
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []byte
	var label string
	var link LinkKind

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Words: initial_words, Codes: codes, LinkLabel: label, Link: link}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// Size keywords are implied; every operand is 32 bits.
	words = slices.DeleteFunc(slices.Clone(words), func(word string) bool {
		return word == "dword" || word == "ptr"
	})

	mnemonic := words[0]
	args := words[1:]

	_, is_jcc := jccMap[mnemonic]

	var oprs []operand
	if mnemonic != ".db" && mnemonic != ".dd" {
		for n, word := range args {
			if n == 0 && word == "short" && (mnemonic == "jmp" || is_jcc) {
				continue
			}
			var opr operand
			opr, err = asm.parseOperand(word)
			if err != nil {
				return
			}
			oprs = append(oprs, opr)
		}
	}

	want := func(count int) error {
		if len(oprs) < count {
			return ErrOpcodeMissing
		}
		if len(oprs) > count {
			return ErrOpcodeExtraArgs
		}
		return nil
	}

	if op, ok := implied[mnemonic]; ok {
		err = want(0)
		if err != nil {
			return
		}
		codes = []byte{op}
		return
	}

	if cc, ok := jccMap[mnemonic]; ok {
		err = want(1)
		if err != nil {
			return
		}
		if oprs[0].kind != OPERAND_LABEL {
			err = ErrOperandInvalid
			return
		}
		codes = []byte{OP_JCC_REL8 + byte(cc), 0}
		label = oprs[0].label
		link = LINK_REL8
		return
	}

	if arith, ok := arithMap[mnemonic]; ok {
		err = want(2)
		if err != nil {
			return
		}
		dst, src := oprs[0], oprs[1]
		switch {
		case isRM(dst) && src.kind == OPERAND_REG:
			codes, err = makeModRM(arith.rmR, uint8(src.reg), dst)
		case dst.kind == OPERAND_REG && src.kind == OPERAND_MEM:
			codes, err = makeModRM(arith.rRm, uint8(dst.reg), src)
		case isRM(dst) && src.isImm8():
			codes, err = makeModRM(OP_GROUP_IMM8, uint8(arith.arith), dst, byte(src.value))
		case arith.arith == ARITH_CMP && dst.kind == OPERAND_REG && dst.reg == REG_EAX && src.kind == OPERAND_IMM:
			codes = append([]byte{OP_CMP_EAX_IMM32}, imm32(src.value)...)
		case isRM(dst) && src.kind == OPERAND_IMM:
			codes, err = makeModRM(OP_GROUP_IMM32, uint8(arith.arith), dst, imm32(src.value)...)
		default:
			err = ErrOperandInvalid
		}
		return
	}

	switch mnemonic {
	case ".db":
		if len(args) == 0 {
			err = ErrOpcodeMissing
			return
		}
		for _, word := range args {
			var value uint32
			value, err = asm.number(word)
			if err != nil {
				return
			}
			if int32(value) < -128 || (int32(value) > 255) {
				err = ErrParseNumber(word)
				return
			}
			codes = append(codes, byte(value))
		}
	case ".dd":
		if len(args) == 0 {
			err = ErrOpcodeMissing
			return
		}
		for _, word := range args {
			var value uint32
			value, err = asm.number(word)
			if err != nil {
				return
			}
			codes = append(codes, imm32(value)...)
		}
	case "mov":
		err = want(2)
		if err != nil {
			return
		}
		dst, src := oprs[0], oprs[1]
		switch {
		case dst.kind == OPERAND_REG && src.kind == OPERAND_IMM:
			codes = append([]byte{OP_MOV_R32_IMM32 + byte(dst.reg)}, imm32(src.value)...)
		case dst.kind == OPERAND_REG && src.kind == OPERAND_LABEL:
			codes = []byte{OP_MOV_R32_IMM32 + byte(dst.reg), 0, 0, 0, 0}
			label = src.label
			link = LINK_ABS32
		case isRM(dst) && src.kind == OPERAND_REG:
			codes, err = makeModRM(OP_MOV_RM32_R32, uint8(src.reg), dst)
		case dst.kind == OPERAND_REG && src.kind == OPERAND_MEM:
			codes, err = makeModRM(OP_MOV_R32_RM32, uint8(dst.reg), src)
		case dst.kind == OPERAND_MEM && src.kind == OPERAND_IMM:
			codes, err = makeModRM(OP_GROUP_MOV, 0, dst, imm32(src.value)...)
		default:
			err = ErrOperandInvalid
		}
	case "inc":
		err = want(1)
		if err != nil {
			return
		}
		switch oprs[0].kind {
		case OPERAND_REG:
			codes = []byte{OP_INC_R32 + byte(oprs[0].reg)}
		case OPERAND_MEM:
			codes, err = makeModRM(OP_GROUP_FF, uint8(FF_INC), oprs[0])
		default:
			err = ErrOperandInvalid
		}
	case "push":
		err = want(1)
		if err != nil {
			return
		}
		src := oprs[0]
		switch {
		case src.kind == OPERAND_REG:
			codes = []byte{OP_PUSH_R32 + byte(src.reg)}
		case src.isImm8():
			codes = []byte{OP_PUSH_IMM8, byte(src.value)}
		case src.kind == OPERAND_IMM:
			codes = append([]byte{OP_PUSH_IMM32}, imm32(src.value)...)
		case src.kind == OPERAND_LABEL:
			codes = []byte{OP_PUSH_IMM32, 0, 0, 0, 0}
			label = src.label
			link = LINK_ABS32
		default:
			codes, err = makeModRM(OP_GROUP_FF, uint8(FF_PUSH), src)
		}
	case "pop":
		err = want(1)
		if err != nil {
			return
		}
		switch oprs[0].kind {
		case OPERAND_REG:
			codes = []byte{OP_POP_R32 + byte(oprs[0].reg)}
		case OPERAND_MEM:
			codes, err = makeModRM(OP_GROUP_POP, 0, oprs[0])
		default:
			err = ErrOperandInvalid
		}
	case "call":
		err = want(1)
		if err != nil {
			return
		}
		if oprs[0].kind == OPERAND_LABEL {
			codes = []byte{OP_CALL_REL32, 0, 0, 0, 0}
			label = oprs[0].label
			link = LINK_REL32
			return
		}
		codes, err = makeModRM(OP_GROUP_FF, uint8(FF_CALL), oprs[0])
	case "jmp":
		err = want(1)
		if err != nil {
			return
		}
		if oprs[0].kind == OPERAND_LABEL {
			label = oprs[0].label
			if args[0] == "short" {
				codes = []byte{OP_JMP_REL8, 0}
				link = LINK_REL8
			} else {
				codes = []byte{OP_JMP_REL32, 0, 0, 0, 0}
				link = LINK_REL32
			}
			return
		}
		codes, err = makeModRM(OP_GROUP_FF, uint8(FF_JMP), oprs[0])
	default:
		err = ErrInstructionInvalid
	}

	if err != nil {
		codes = nil
	}

	return
}
