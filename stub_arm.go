//go:build arm && linux

package entry

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// ARM mode. The PC reads eight bytes ahead, so `ldr pc, [pc, #-4]` loads the
// word directly behind the instruction and branches there.
var stubTemplate = []byte{
	0x04, 0xF0, 0x1F, 0xE5, // ldr pc, [pc, #-4]
	0x00, 0x00, 0x00, 0x00, // target literal
}

const (
	supported   = true
	patchOffset = 4
)

func patchStub(code []byte, exec, target uintptr) {
	binary.LittleEndian.PutUint32(code[patchOffset:], uint32(target))
}

// __ARM_NR_cacheflush, not in the generic syscall table
const sysARMCacheflush = 0x0F0002

// flushICache asks the kernel to synchronize the caches over the patched
// range; ARMv7 has split caches and no userspace maintenance instructions.
func flushICache(exec uintptr, size int) {
	_, _, _ = unix.Syscall(sysARMCacheflush, exec, exec+uintptr(size), 0)
}

// implemented in stubs_arm.s
func callStub(addr uintptr) uintptr
func defaultTarget()
func defaultTargetEntry() uintptr
func targetA()
func targetAEntry() uintptr
func targetB()
func targetBEntry() uintptr
