package entry

import "encoding/binary"

// The displacement to a provider may exceed 2^31 and there is no JMP with a
// 64 bit offset, so the target goes through a scratch register.
var stubTemplate = []byte{
	0x48, 0xB8, 0xBD, 0xAC, 0xCD, 0xAB, 0x78, 0x56, 0x34, 0x12, // movabs $0x12345678abcdacbd,%rax
	0xFF, 0xE0, // jmp *%rax
}

const (
	supported   = true
	patchOffset = 2
)

// patchStub writes the absolute target into the movabs operand. exec is
// unused here: the operand is absolute and x86-64 keeps instruction fetch
// coherent with data writes.
func patchStub(code []byte, exec, target uintptr) {
	binary.LittleEndian.PutUint64(code[patchOffset:], uint64(target))
}

func flushICache(exec uintptr, size int) {}

// implemented in stubs_amd64.s
func callStub(addr uintptr) uintptr
func defaultTarget()
func defaultTargetEntry() uintptr
func targetA()
func targetAEntry() uintptr
func targetB()
func targetBEntry() uintptr
