//go:build arm && linux

package entry

import (
	"encoding/binary"
	"testing"
)

// Decodes patched stubs analytically: ldr pc, [pc, #-4] reads the word right
// behind the instruction, which holds the absolute target.
func TestStubEncoding(t *testing.T) {
	targets := []uintptr{0x1000, 0x7FFF_FFF0, 0xFFFF_FFF8}
	for _, target := range targets {
		code := EncodeStub(0x8000, target)
		if got := binary.LittleEndian.Uint32(code[0:4]); got != 0xE51FF004 {
			t.Fatalf("ldr pc word %#08x", got)
		}
		if got := uintptr(binary.LittleEndian.Uint32(code[4:8])); got != target {
			t.Fatalf("literal %#x, want %#x", got, target)
		}
	}
}

func TestTemplateFitsSlot(t *testing.T) {
	if len(Template()) > StubSize() {
		t.Fatalf("template %d exceeds slot %d", len(Template()), StubSize())
	}
	if PatchOffset() != 4 {
		t.Fatalf("patch offset %d", PatchOffset())
	}
}
