package execmem

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ZenLiuCN/fn"
)

func TestDualView(t *testing.T) {
	write, exec, err := Alloc(4096)
	if errors.Is(err, ErrUnsupported) {
		t.Skip("no executable mapping on this platform")
	}
	fn.Panic(err)
	defer func() { fn.Panic(Free(write, exec)) }()

	if len(write) != 4096 || len(exec) != 4096 {
		t.Fatalf("short mapping: %d/%d", len(write), len(exec))
	}
	copy(write, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	write[4095] = 0x5A
	if !bytes.Equal(exec[:4], []byte{0xDE, 0xAD, 0xBE, 0xEF}) || exec[4095] != 0x5A {
		t.Fatalf("views disagree: % x", exec[:4])
	}
}

func TestFreeThenAllocAgain(t *testing.T) {
	write, exec, err := Alloc(4096)
	if errors.Is(err, ErrUnsupported) {
		t.Skip("no executable mapping on this platform")
	}
	fn.Panic(err)
	fn.Panic(Free(write, exec))

	write, exec, err = Alloc(8192)
	fn.Panic(err)
	write[0] = 1
	if exec[0] != 1 {
		t.Fatal("fresh mapping views disagree")
	}
	fn.Panic(Free(write, exec))
}
