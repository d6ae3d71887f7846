package main

import (
	"encoding/hex"
	"fmt"
	. "github.com/ZenLiuCN/entry"
	"github.com/urfave/cli/v2"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
)

func main() {
	app := cli.NewApp()
	app.Usage = "entrypoint stub inspector"
	app.Action = action
	app.Name = "Stubdump"
	app.Description = "inspect the entrypoint stub template and encodings of the current platform"
	app.Commands = []*cli.Command{
		{Name: "encode",
			Action: encode,
			Usage:  "display the stub bytes after patching to a target",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Usage: "target address, hex", Required: true},
				&cli.StringFlag{Name: "base", Aliases: []string{"b"}, Usage: "executable base address of the stub, hex"},
			},
		},
		{Name: "probe",
			Action: probe,
			Usage:  "generate a live stub, call it before and after binding",
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func action(ctx *cli.Context) error {
	fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if !Supported() {
		fmt.Println("degraded build: no stub template for this platform")
		return nil
	}
	fmt.Printf("stub size: %d\n", StubSize())
	fmt.Printf("patch offset: %d\n", PatchOffset())
	fmt.Printf("template:\n%s", hex.Dump(Template()))
	return nil
}

func encode(ctx *cli.Context) (err error) {
	if !Supported() {
		return fmt.Errorf("degraded build: nothing to encode")
	}
	var target, base uint64
	if target, err = parseAddr(ctx.String("target")); err != nil {
		return
	}
	if b := ctx.String("base"); b != "" {
		if base, err = parseAddr(b); err != nil {
			return
		}
	}
	fmt.Printf("stub at %#x targeting %#x:\n%s", base, target,
		hex.Dump(EncodeStub(uintptr(base), uintptr(target))))
	return
}

func probe(ctx *cli.Context) (err error) {
	defer Free()
	inner, err := Generate("probe.inner")
	if err != nil {
		return
	}
	outer, err := Generate("probe.outer")
	if err != nil {
		return
	}
	fmt.Printf("generated probe.outer at %#x, placeholder returns %#x\n", outer, Call(outer))
	// bind the outer stub to the inner one, a call now takes two hops
	Update(func(name string) uintptr {
		if name == "probe.outer" {
			return uintptr(inner)
		}
		return 0
	})
	fmt.Printf("bound probe.outer -> %#x, call returns %#x\n", inner, Call(outer))
	return
}

func parseAddr(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}
