package execmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc maps size bytes of anonymous shared memory twice, once read-write
// and once read-execute. Both views address the same pages, so bytes written
// through the first are fetched through the second.
func Alloc(size int) (write, exec []byte, err error) {
	fd, err := unix.MemfdCreate("entry-stubs", unix.MFD_CLOEXEC)
	if err != nil {
		return nil, nil, fmt.Errorf("memfd: %w", err)
	}
	// the fd only anchors the pages until both views exist
	defer unix.Close(fd)
	if err = unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, nil, fmt.Errorf("size stub file: %w", err)
	}
	if write, err = unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		return nil, nil, fmt.Errorf("map write view: %w", err)
	}
	if exec, err = unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_EXEC, unix.MAP_SHARED); err != nil {
		_ = unix.Munmap(write)
		return nil, nil, fmt.Errorf("map exec view: %w", err)
	}
	return
}
