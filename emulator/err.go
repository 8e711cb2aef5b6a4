package emulator

import (
	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

// ErrRuntime indicates the source line of a runtime fault.
// LineNo is zero when no program listing covers the fault.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return err.Err.Error()
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrOrigin is a program assembled for an address other than LOAD_OFFSET.
type ErrOrigin struct {
	Origin uint32
}

func (err *ErrOrigin) Error() string {
	return f("program origin 0x%08x is not the load offset 0x%08x", err.Origin, uint32(LOAD_OFFSET))
}
