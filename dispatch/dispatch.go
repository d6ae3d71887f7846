// Package dispatch is the synchronized layer over an entry.Pool: providers
// register their symbol tables, callers take stubs by name, and Bind runs the
// binding protocol with the earliest registered provider winning each name.
package dispatch

import (
	"errors"
	"sync"

	"github.com/ZenLiuCN/entry"
	"github.com/ZenLiuCN/fn"
	"github.com/pkujhd/goloader"
)

type Table struct {
	Pool      entry.Pool
	Providers map[string]map[string]uintptr
	order     []string // provider registration order, resolution scans it front to back
	sync.RWMutex
}

var (
	ErrAlreadyRegistered = errors.New("provider already registered")
	ErrUnknownProvider   = errors.New("provider not registered")
)

// NewTable create a new table with its own pool of at most capacity entries
func NewTable(capacity int, debug ...bool) *Table {
	t := new(Table)
	t.Pool = entry.NewPool(nil, capacity, debug...)
	t.Providers = make(map[string]map[string]uintptr)
	return t
}

// Register a provider under a unique name with its symbol table. The table
// keeps the map, callers should not mutate it afterwards.
func (t *Table) Register(provider string, syms map[string]uintptr) error {
	t.Lock()
	defer t.Unlock()
	if _, ok := t.Providers[provider]; ok {
		return ErrAlreadyRegistered
	}
	t.Providers[provider] = syms
	t.order = append(t.order, provider)
	return nil
}

// RegisterExecutable register the symbols of the running process as the
// provider named "executable".
func (t *Table) RegisterExecutable() (err error) {
	syms := make(map[string]uintptr)
	if err = goloader.RegSymbol(syms); err != nil {
		return
	}
	return t.Register("executable", syms)
}

// RegisterExecute register the symbols of the executable at path as a
// provider named by that path.
func (t *Table) RegisterExecute(path string) (err error) {
	syms := make(map[string]uintptr)
	if err = goloader.RegSymbolWithPath(syms, path); err != nil {
		return
	}
	return t.Register(path, syms)
}

// RegisterSo register the symbols of a shared object as a provider named by
// its path.
func (t *Table) RegisterSo(path string) (err error) {
	syms := make(map[string]uintptr)
	if err = goloader.RegSymbolWithSo(syms, path); err != nil {
		return
	}
	return t.Register(path, syms)
}

// Require generate or fetch the stub for name
func (t *Table) Require(name string) (entry.Stub, error) {
	t.Lock()
	defer t.Unlock()
	return t.Pool.Generate(name)
}

// Bind run one binding pass: every entry still on the placeholder is offered
// to the providers in registration order. Already bound entries stay put.
func (t *Table) Bind() {
	t.Lock()
	defer t.Unlock()
	t.Pool.Update(t.resolve)
}

// Resolve report which address the providers currently offer for name, zero
// when none does. Purely informational, it does not touch the pool.
func (t *Table) Resolve(name string) uintptr {
	t.RLock()
	defer t.RUnlock()
	return t.resolve(name)
}

func (t *Table) resolve(name string) uintptr {
	for _, p := range t.order {
		if addr, ok := t.Providers[p][name]; ok && addr != 0 {
			return addr
		}
	}
	return 0
}

// ProviderNames in registration order
func (t *Table) ProviderNames() []string {
	t.RLock()
	defer t.RUnlock()
	return append([]string(nil), t.order...)
}

// Symbols dump the symbol names a provider offers
func (t *Table) Symbols(provider string) ([]string, error) {
	t.RLock()
	defer t.RUnlock()
	syms, ok := t.Providers[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return fn.MapKeys(syms), nil
}

// Free release the pool and drop every provider. All stubs handed out by
// Require become dangling.
func (t *Table) Free() {
	t.Lock()
	defer t.Unlock()
	t.Pool.Free()
	for k := range t.Providers {
		delete(t.Providers, k)
	}
	t.order = nil
}
