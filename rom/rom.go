// Package rom reads and writes flat boot images.
package rom

import (
	"bytes"
	"io"
	"io/fs"
)

// Rom is a flat binary image, loaded verbatim into memory.
type Rom struct {
	Data []byte
}

var (
	_ io.ReaderFrom = (*Rom)(nil)
	_ io.WriterTo   = (*Rom)(nil)
)

// Size returns the image length in bytes.
func (rom *Rom) Size() uint32 {
	return uint32(len(rom.Data))
}

// ReadFrom replaces the image with the contents of a reader.
func (rom *Rom) ReadFrom(file io.Reader) (n int64, err error) {
	var buff bytes.Buffer

	n, err = buff.ReadFrom(file)
	if err != nil {
		return
	}

	rom.Data = buff.Bytes()

	return
}

// WriteTo writes the image to a writer.
func (rom *Rom) WriteTo(file io.Writer) (n int64, err error) {
	count, err := file.Write(rom.Data)
	n = int64(count)

	return
}

// Unmarshal loads the image from a named file of a file system.
func (rom *Rom) Unmarshal(filesys fs.FS, name string) (err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		err = &ErrRom{Name: name, Err: err}
		return
	}

	rom.Data = data

	return
}
