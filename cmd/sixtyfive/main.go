// Command sixtyfive drives a CPU core against a ROM image from the command
// line: reset it, step it a fixed number of times, or run it until it
// halts, printing a register snapshot at the end.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jchacon-lab/sixtyfivecore/cpu"
	"github.com/jchacon-lab/sixtyfivecore/driver"
)

func main() {
	app := &cli.App{
		Name:  "sixtyfive",
		Usage: "run a 6502 ROM image against the core interpreter",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Required: true, Usage: "path to a raw ROM image"},
			&cli.IntFlag{Name: "steps", Value: 0, Usage: "instructions to execute (0 = run until halted)"},
			&cli.BoolFlag{Name: "undocumented", Usage: "enable unofficial opcode behavior"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "sixtyfive:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	rom, err := os.ReadFile(ctx.String("rom"))
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	var opts []cpu.Option
	if ctx.Bool("undocumented") {
		opts = append(opts, cpu.WithUndocumented())
	}

	d, err := driver.New(rom, opts...)
	if err != nil {
		return err
	}

	steps := ctx.Int("steps")
	if steps > 0 {
		for i := 0; i < steps; i++ {
			if _, err := d.Step(); err != nil {
				return err
			}
		}
	} else {
		if err := d.RunUntilPaused(context.Background()); err != nil {
			return err
		}
	}

	snap := d.Snapshot()
	fmt.Printf("PC=%04X AC=%02X XR=%02X YR=%02X SP=%02X SR=%02X\n",
		snap.PC, snap.AC, snap.XR, snap.YR, snap.SP, snap.SR)
	return nil
}
