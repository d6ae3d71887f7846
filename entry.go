package entry

import (
	"errors"
	"log"
	"unsafe"

	"github.com/ZenLiuCN/entry/execmem"
)

// DefaultCapacity is the stub capacity used by the package level pool and by
// NewPool when no capacity is given.
const DefaultCapacity = 4096

// stubSize is the arena slot reserved for one stub on every architecture.
// The active template must fit; see the init check below.
const stubSize = 16

type (
	//Stub is the executable address of a generated entrypoint. It is only
	//callable through Call, it is not a Go func value.
	Stub uintptr
	//Resolver maps an entrypoint name to a target address, zero means no
	//target is available yet. Closures carry whatever context the resolver
	//needs.
	Resolver func(name string) uintptr
	//Pool of generated entrypoints, this interface can not be implement outside this package.
	//
	//Use Steps:
	//
	//	1. NewPool to create the pool, the arena is mapped lazily on first Generate.
	//	2. [Pool.Generate] to obtain named stubs, callable at once (they reach the placeholder target).
	//	3. [Pool.Update] whenever a provider may supply real targets.
	//	4. Call [Pool.Free] to release the arena.
	//
	//Note:
	//
	//	1. A Pool is not synchronized, callers must serialize Generate, Update and Free.
	//	2. Patching a stub while another thread is executing it is unsafe, bind
	//	   before latency sensitive callers first invoke the stub, or tolerate a
	//	   transient call landing on the placeholder.
	Pool interface {
		Generate(name string) (s Stub, err error) //generate or fetch the stub for name, memoized by name
		Update(resolve Resolver)                  //attempt to bind every unassigned entry, sticky on success
		Assigned(name string) bool                //report whether name has a bound target
		Names() []string                          //names in generation order
		Count() int                               //generated entry count
		Capacity() int                            //fixed entry capacity
		Free()                                    //release the arena and clear all entries
		internal()
	}
	entrypoint struct {
		name     string
		write    []byte  // stub bytes through the writable view, patching only
		exec     uintptr // same bytes through the executable view, the callable address
		assigned bool
	}
	pool struct {
		pages    PageAllocator
		capacity int
		write    []byte
		exec     []byte
		entries  []entrypoint
		debug    bool
	}
)

// PageAllocator reserves executable memory as two views over the same pages,
// one writable and one executable. Implemented by [execmem] for the host
// platform; any other implementation must guarantee the dual view contract.
type PageAllocator interface {
	AllocExecPages(size int) (write, exec []byte, err error)
	FreeExecPages(write, exec []byte) error
}

var (
	// ErrUnsupported occurs on platforms without a stub template; the pool is
	// permanently degraded there.
	ErrUnsupported = errors.New("no entrypoint template for this platform")
	// ErrExhausted occurs when the pool is at capacity.
	ErrExhausted = errors.New("entrypoint pool exhausted")
	// ErrEmptyName occurs when Generate is called without a name.
	ErrEmptyName = errors.New("empty entrypoint name")
)

func init() {
	if supported && len(stubTemplate) > stubSize {
		panic("entry: stub template exceeds the stub slot size")
	}
}

// Supported reports whether this build carries a stub template. When false
// every Generate fails with ErrUnsupported and Update and Free are no-ops.
func Supported() bool {
	return supported
}

// NewPool create a new pool with at most capacity entries. A nil pages uses
// the [execmem] system allocator, capacity below one uses DefaultCapacity, an
// optional debug parameter will enable debug logging inside the pool.
func NewPool(pages PageAllocator, capacity int, debug ...bool) Pool {
	x := new(pool)
	if pages == nil {
		pages = systemPages{}
	}
	x.pages = pages
	x.capacity = capacity
	if x.capacity < 1 {
		x.capacity = DefaultCapacity
	}
	x.debug = len(debug) > 0 && debug[0]
	return x
}

func (p *pool) internal() {}

// ensure maps the arena once; a no-op when it already exists.
func (p *pool) ensure() (err error) {
	if p.write != nil {
		return
	}
	if p.write, p.exec, err = p.pages.AllocExecPages(stubSize * p.capacity); err != nil {
		p.write, p.exec = nil, nil
		return
	}
	if p.debug {
		log.Printf("mapped arena: %d bytes, write %p exec %p", stubSize*p.capacity, &p.write[0], &p.exec[0])
	}
	return
}

func (p *pool) Generate(name string) (s Stub, err error) {
	if !supported {
		return 0, ErrUnsupported
	}
	if name == "" {
		return 0, ErrEmptyName
	}
	if err = p.ensure(); err != nil {
		return
	}
	for i := range p.entries {
		if p.entries[i].name == name {
			// already generated, hand back the same address
			return Stub(p.entries[i].exec), nil
		}
	}
	if len(p.entries) >= p.capacity {
		return 0, ErrExhausted
	}
	i := len(p.entries)
	e := entrypoint{
		name:  name,
		write: p.write[i*stubSize : (i+1)*stubSize],
		exec:  uintptr(unsafe.Pointer(&p.exec[i*stubSize])),
	}
	copy(e.write, stubTemplate)
	p.patch(&e, defaultTargetEntry())
	p.entries = append(p.entries, e)
	if p.debug {
		log.Printf("generated %q at %#x (slot %d)", name, e.exec, i)
	}
	return Stub(e.exec), nil
}

// patch retargets one stub. The operand is computed from the executable
// address, written through the writable view, then the instruction cache is
// brought in sync where the architecture requires it.
func (p *pool) patch(e *entrypoint, target uintptr) {
	patchStub(e.write, e.exec, target)
	flushICache(e.exec, len(stubTemplate))
	if p.debug {
		log.Printf("patched %q -> %#x", e.name, target)
	}
}

func (p *pool) Update(resolve Resolver) {
	for i := range p.entries {
		if p.entries[i].assigned {
			continue
		}
		if target := resolve(p.entries[i].name); target != 0 {
			p.patch(&p.entries[i], target)
			p.entries[i].assigned = true
		}
	}
}

func (p *pool) Assigned(name string) bool {
	for i := range p.entries {
		if p.entries[i].name == name {
			return p.entries[i].assigned
		}
	}
	return false
}

func (p *pool) Names() (v []string) {
	v = make([]string, len(p.entries))
	for i := range p.entries {
		v[i] = p.entries[i].name
	}
	return
}

func (p *pool) Count() int {
	return len(p.entries)
}

func (p *pool) Capacity() int {
	return p.capacity
}

func (p *pool) Free() {
	p.entries = nil
	if p.write != nil {
		if err := p.pages.FreeExecPages(p.write, p.exec); err != nil && p.debug {
			log.Printf("release arena: %v", err)
		}
		p.write, p.exec = nil, nil
	}
}

// Call invoke a stub under the stub call convention: no arguments, one word
// result. A freshly generated stub returns zero, the placeholder sentinel.
func Call(s Stub) uintptr {
	return callStub(uintptr(s))
}

// systemPages adapts the execmem package to the PageAllocator contract.
type systemPages struct{}

func (systemPages) AllocExecPages(size int) (write, exec []byte, err error) {
	return execmem.Alloc(size)
}
func (systemPages) FreeExecPages(write, exec []byte) error {
	return execmem.Free(write, exec)
}
