package entry

import (
	"encoding/binary"
	"testing"
)

// Decodes patched stubs analytically: jmp rel32 where the displacement is
// relative to the instruction after the five byte jump.
func TestStubEncoding(t *testing.T) {
	cases := []struct{ base, target uintptr }{
		{0x8048000, 0x8049000},          // small forward
		{0x8049000, 0x8048000},          // small backward
		{0x1000, 0x1000 + 0x7FFFFFFF/2}, // large forward
		{0xFFFF0000, 0x10},              // wraps around the address space
	}
	for _, c := range cases {
		code := EncodeStub(c.base, c.target)
		if code[0] != 0xE9 {
			t.Fatalf("opcode %#x, want jmp rel32", code[0])
		}
		disp := binary.LittleEndian.Uint32(code[1:5])
		// destination = base + 5 + disp, in 32 bit modular arithmetic
		if got := uintptr(uint32(c.base) + 5 + disp); got != c.target {
			t.Fatalf("stub at %#x lands on %#x, want %#x", c.base, got, c.target)
		}
	}
}

func TestTemplateFitsSlot(t *testing.T) {
	if len(Template()) > StubSize() {
		t.Fatalf("template %d exceeds slot %d", len(Template()), StubSize())
	}
	if PatchOffset() != 1 {
		t.Fatalf("patch offset %d", PatchOffset())
	}
}
