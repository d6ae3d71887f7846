//go:build linux || darwin || freebsd

package execmem

import "golang.org/x/sys/unix"

// Free unmaps both views. The pair must come from Alloc; when the views are
// one mapping (the single view fallback) it is unmapped once.
func Free(write, exec []byte) (err error) {
	if len(exec) > 0 && (len(write) == 0 || &exec[0] != &write[0]) {
		err = unix.Munmap(exec)
	}
	if len(write) > 0 {
		if e := unix.Munmap(write); err == nil {
			err = e
		}
	}
	return
}
