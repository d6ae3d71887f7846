package entry

// The package level pool mirrors the process wide entrypoint table most hosts
// want: one lazily created pool with DefaultCapacity slots on the system
// allocator. Callers must serialize these three functions, the same contract
// as a Pool.

var std Pool

// Generate obtain the stub for name from the process wide pool, creating the
// pool on first use.
func Generate(name string) (Stub, error) {
	if std == nil {
		std = NewPool(nil, DefaultCapacity)
	}
	return std.Generate(name)
}

// Update run one binding pass over the process wide pool. A no-op before the
// first Generate.
func Update(resolve Resolver) {
	if std == nil {
		return
	}
	std.Update(resolve)
}

// Free release the process wide pool. Every previously returned Stub becomes
// dangling; a later Generate starts over with a fresh arena.
func Free() {
	if std != nil {
		std.Free()
		std = nil
	}
}
