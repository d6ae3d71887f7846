package entry

import (
	"strconv"
	"testing"

	"github.com/ZenLiuCN/fn"
)

func BenchmarkGenerate(b *testing.B) {
	if !Supported() {
		b.Skip("degraded build")
	}
	p := NewPool(nil, DefaultCapacity)
	defer p.Free()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Generate("bench" + strconv.Itoa(i%DefaultCapacity))
	}
}

func BenchmarkCall(b *testing.B) {
	if !Supported() {
		b.Skip("degraded build")
	}
	p := NewPool(nil, 8)
	defer p.Free()
	s := fn.Panic1(p.Generate("bench"))
	p.Update(func(string) uintptr { return targetAEntry() })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Call(s)
	}
}
