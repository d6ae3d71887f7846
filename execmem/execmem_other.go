//go:build !linux && !darwin && !freebsd && !windows

package execmem

func Alloc(size int) (write, exec []byte, err error) {
	return nil, nil, ErrUnsupported
}

func Free(write, exec []byte) error {
	return ErrUnsupported
}
