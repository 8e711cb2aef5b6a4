package rom

import (
	"github.com/ezrec/x86emu/translate"
)

var f = translate.From

// ErrRom locates an image that could not be loaded.
type ErrRom struct {
	Name string
	Err  error
}

func (err *ErrRom) Error() string {
	return f("image %v: %v", err.Name, err.Err)
}

func (err *ErrRom) Unwrap() error {
	return err.Err
}
