package entry

import "encoding/binary"

// No AArch64 instruction carries a 64 bit immediate, so the stub loads the
// target from a literal placed right behind the branch. X16 is IP0, reserved
// for exactly this kind of veneer.
var stubTemplate = []byte{
	0x50, 0x00, 0x00, 0x58, // ldr x16, 8
	0x00, 0x02, 0x1F, 0xD6, // br x16
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // target literal
}

const (
	supported   = true
	patchOffset = 8
)

func patchStub(code []byte, exec, target uintptr) {
	binary.LittleEndian.PutUint64(code[patchOffset:], uint64(target))
}

// flushICache cleans the data cache and invalidates the instruction cache
// over the patched range. AArch64 does not keep the two coherent, skipping
// this leaves the CPU free to execute stale stub bytes.
func flushICache(exec uintptr, size int) {
	const line = 64
	begin := exec &^ (line - 1)
	end := (exec + uintptr(size) + line - 1) &^ (line - 1)
	icacheSync(begin, end)
}

// implemented in stubs_arm64.s
func icacheSync(begin, end uintptr)
func callStub(addr uintptr) uintptr
func defaultTarget()
func defaultTargetEntry() uintptr
func targetA()
func targetAEntry() uintptr
func targetB()
func targetBEntry() uintptr
