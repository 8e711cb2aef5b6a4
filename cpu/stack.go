package cpu

// The stack lives in Memory and grows downward from ESP.

// Push32 decrements ESP by 4 and writes value at the new ESP.
// ESP is unchanged if the write faults.
func (cpu *Cpu) Push32(value uint32) (err error) {
	address := cpu.ReadRegister(REG_ESP) - 4

	err = cpu.Memory.Write32(address, value)
	if err != nil {
		return
	}

	cpu.WriteRegister(REG_ESP, address)
	return
}

// Pop32 reads the value at ESP and increments ESP by 4.
func (cpu *Cpu) Pop32() (value uint32, err error) {
	value, err = cpu.Peek32()
	if err != nil {
		return
	}

	cpu.WriteRegister(REG_ESP, cpu.ReadRegister(REG_ESP)+4)
	return
}

// Peek32 reads the value at ESP.
func (cpu *Cpu) Peek32() (value uint32, err error) {
	return cpu.Memory.Read32(cpu.ReadRegister(REG_ESP))
}
