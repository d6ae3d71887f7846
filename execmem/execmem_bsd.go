//go:build darwin || freebsd

package execmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc has no anonymous dual mapping here, so it falls back to one
// read-write-execute view serving as both the write and the exec base.
func Alloc(size int) (write, exec []byte, err error) {
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("map rwx pages: %w", err)
	}
	return b, b, nil
}
