package execmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Alloc commits one read-write-execute region serving as both the write and
// the exec base; there is no anonymous dual mapping to be had here.
func Alloc(size int) (write, exec []byte, err error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return nil, nil, fmt.Errorf("commit rwx pages: %w", err)
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return b, b, nil
}

func Free(write, exec []byte) error {
	if len(write) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&write[0])), 0, windows.MEM_RELEASE)
}
