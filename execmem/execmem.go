/*
Package execmem maps executable memory as paired views over the same
physical pages: a writable view for patching and an executable view for
calling, so no address is ever writable and executable at once.

On linux the pair is two mappings of one memfd. On darwin, freebsd and
windows there is no anonymous dual mapping, the fallback is a single
read-write-execute view serving both roles. Everywhere else Alloc fails with
ErrUnsupported.
*/
package execmem

import "errors"

// ErrUnsupported occurs on platforms without any executable mapping support.
var ErrUnsupported = errors.New("executable page mapping unavailable on this platform")
