// Command disasm prints a linear disassembly of a raw ROM image.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/jchacon-lab/sixtyfivecore/disasm"
)

func main() {
	app := cli.NewApp()
	app.Name = "disasm"
	app.Usage = "disassemble a raw 6502 ROM image"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rom", Usage: "path to a raw ROM image"},
		cli.UintFlag{Name: "base", Value: 0x8000, Usage: "address the first byte of the image loads at"},
	}
	app.Action = func(ctx *cli.Context) error {
		path := ctx.String("rom")
		if path == "" {
			return cli.NewExitError("missing required flag --rom", 1)
		}
		buf, err := os.ReadFile(path)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("reading rom: %v", err), 1)
		}

		for _, r := range disasm.Disassemble(buf, uint16(ctx.Uint("base"))) {
			fmt.Printf("%04X: %-12s %s\n", r.Address, hexBytes(r.Raw), r.Text)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "disasm:", err)
		os.Exit(1)
	}
}

func hexBytes(raw []byte) string {
	s := ""
	for _, b := range raw {
		s += fmt.Sprintf("%02X ", b)
	}
	return s
}
