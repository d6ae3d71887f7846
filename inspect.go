package entry

// Inspection helpers for the stubdump tool and for checking the instruction
// encoding against a disassembler. None of these touch a live pool.

// StubSize is the arena slot reserved per entry, identical on every
// architecture.
func StubSize() int {
	return stubSize
}

// PatchOffset locates the target operand inside the template. Zero in a
// degraded build.
func PatchOffset() int {
	return patchOffset
}

// Template returns a copy of the active stub template, nil in a degraded
// build.
func Template() []byte {
	if !supported {
		return nil
	}
	return append([]byte(nil), stubTemplate...)
}

// EncodeStub renders the bytes a stub at executable address base would hold
// after being patched to target, without touching any real memory. Nil in a
// degraded build.
func EncodeStub(base, target uintptr) []byte {
	if !supported {
		return nil
	}
	code := make([]byte, stubSize)
	copy(code, stubTemplate)
	patchStub(code, base, target)
	return code
}
