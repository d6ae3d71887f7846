/*
Package entry generates patchable call trampolines for vendor neutral
dispatch: callable addresses handed out before anyone knows which provider
will finally implement the named function.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. Every stub lives in one arena mapped twice, a writable view used only for
    patching and an executable view used only for calling, so write and
    execute permission never meet at the executable address.
 2. Exactly one architecture template is compiled per target (amd64, 386,
    arm64, arm/linux). The amd64 stub jumps through an absolute operand, the
    386 stub through a PC relative one, arm and arm64 load the target from a
    literal next to the branch because no single instruction holds an
    arbitrary absolute address there.
 3. On arm and arm64 the instruction cache is explicitly brought in sync
    after each patch, the hardware does not do it for us.
 4. Platforms without a template build in a degraded mode where Generate
    always fails with ErrUnsupported.

# Notes

 1. A Pool is deliberately unsynchronized, serialize Generate, Update and
    Free externally (for a locked layer see the dispatch subpackage).
 2. A freshly generated stub is bound to a placeholder returning zero, never
    to undefined behavior. Binding through Update is sticky: the first
    resolved target wins for the life of the pool.
 3. Free invalidates every address the pool ever returned. That is
    documented, not guarded against.
 4. Stubs use a minimal call convention (no arguments, one word result in
    AX/R0), invoke them through Call.

# Stub inspection tool

The stubdump command prints the active template and the exact bytes a stub
holds after patching, useful when checking encodings against a disassembler:

	go install github.com/ZenLiuCN/entry/stubdump@latest

# Samples

See tests.
*/
package entry
