//go:build !amd64 && !386 && !arm64 && !(arm && linux)

package entry

// Degraded build: no stub template exists for this platform. Generate always
// fails with ErrUnsupported, everything else is a no-op. This file is the
// explicit fallback, it must not grow real behavior.

const (
	supported   = false
	patchOffset = 0
)

var stubTemplate []byte

func patchStub(code []byte, exec, target uintptr) {}

func flushICache(exec uintptr, size int) {}

func callStub(addr uintptr) uintptr { return 0 }

func defaultTargetEntry() uintptr { return 0 }

func targetAEntry() uintptr { return 0 }

func targetBEntry() uintptr { return 0 }
