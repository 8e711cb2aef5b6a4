package cpu

import (
	"encoding/binary"
)

const (
	MEMORY_SIZE = 1024 * 1024 // Flat memory size, 1 MiB.
)

// Memory is a flat, byte addressable memory.
// Multi-byte accesses are little-endian.
type Memory struct {
	Data []byte
}

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size uint) (mem *Memory) {
	mem = &Memory{
		Data: make([]byte, size),
	}

	return
}

// Size returns the memory capacity in bytes.
func (mem *Memory) Size() uint32 {
	return uint32(len(mem.Data))
}

// check validates an access of size bytes at address.
func (mem *Memory) check(address uint32, size int) (err error) {
	if uint64(address)+uint64(size) > uint64(len(mem.Data)) {
		err = &ErrMemory{Address: address, Size: size}
	}
	return
}

// Read8 reads a byte.
func (mem *Memory) Read8(address uint32) (value uint8, err error) {
	err = mem.check(address, 1)
	if err != nil {
		return
	}

	value = mem.Data[address]
	return
}

// Write8 writes a byte.
func (mem *Memory) Write8(address uint32, value uint8) (err error) {
	err = mem.check(address, 1)
	if err != nil {
		return
	}

	mem.Data[address] = value
	return
}

// Read32 reads a little-endian 32-bit value.
func (mem *Memory) Read32(address uint32) (value uint32, err error) {
	err = mem.check(address, 4)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(mem.Data[address:])
	return
}

// Write32 writes a little-endian 32-bit value.
// Nothing is written if any byte would land outside of memory.
func (mem *Memory) Write32(address uint32, value uint32) (err error) {
	err = mem.check(address, 4)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(mem.Data[address:], value)
	return
}

// Load copies an image verbatim to offset.
func (mem *Memory) Load(offset uint32, image []byte) (err error) {
	if uint64(offset)+uint64(len(image)) > uint64(len(mem.Data)) {
		err = ErrImageSize
		return
	}

	copy(mem.Data[offset:], image)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem.Data)
}
