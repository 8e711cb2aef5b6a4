package rom

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestRom_ReadFrom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{0xff}}

	n, err := rom.ReadFrom(bytes.NewReader([]byte{0xb8, 0x01, 0x00, 0x00, 0x00, 0xf4}))
	assert.NoError(err)
	assert.Equal(int64(6), n)
	assert.Equal(uint32(6), rom.Size())
	assert.Equal([]byte{0xb8, 0x01, 0x00, 0x00, 0x00, 0xf4}, rom.Data)

	n, err = rom.ReadFrom(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Equal(int64(0), n)
	assert.Equal(uint32(0), rom.Size())
}

func TestRom_WriteTo(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{0x90, 0x90, 0xc3}}

	var buff bytes.Buffer
	n, err := rom.WriteTo(&buff)
	assert.NoError(err)
	assert.Equal(int64(3), n)
	assert.Equal(rom.Data, buff.Bytes())
}

func TestRom_Unmarshal(t *testing.T) {
	assert := assert.New(t)

	filesys := fstest.MapFS{
		"boot.bin":     &fstest.MapFile{Data: []byte{0xeb, 0xfe}},
		"sub/boot.bin": &fstest.MapFile{Data: []byte{0xf4}},
	}

	rom := &Rom{}
	err := rom.Unmarshal(filesys, "boot.bin")
	assert.NoError(err)
	assert.Equal([]byte{0xeb, 0xfe}, rom.Data)

	err = rom.Unmarshal(filesys, "sub/boot.bin")
	assert.NoError(err)
	assert.Equal([]byte{0xf4}, rom.Data)

	err = rom.Unmarshal(filesys, "missing.bin")
	assert.True(errors.Is(err, fs.ErrNotExist))
	var err_rom *ErrRom
	if assert.True(errors.As(err, &err_rom)) {
		assert.Equal("missing.bin", err_rom.Name)
	}
	assert.Equal([]byte{0xf4}, rom.Data)
}
