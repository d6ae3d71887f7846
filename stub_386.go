package entry

import "encoding/binary"

// A single JMP rel32 reaches the whole 32 bit address space.
var stubTemplate = []byte{
	0xE9, 0x78, 0x56, 0x34, 0x12, // jmp 0x12345678
}

const (
	supported   = true
	patchOffset = 1
	// length of the jump instruction itself, the displacement is relative
	// to the following instruction
	jmpLen = 5
)

// patchStub recomputes the PC relative displacement from the stub's own
// executable address, never from the writable one.
func patchStub(code []byte, exec, target uintptr) {
	binary.LittleEndian.PutUint32(code[patchOffset:], uint32(target-exec-jmpLen))
}

func flushICache(exec uintptr, size int) {}

// implemented in stubs_386.s
func callStub(addr uintptr) uintptr
func defaultTarget()
func defaultTargetEntry() uintptr
func targetA()
func targetAEntry() uintptr
func targetB()
func targetBEntry() uintptr
