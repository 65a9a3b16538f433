package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v2"

	"sixtyfiveohtwo/cpu"
	"sixtyfiveohtwo/mem"
)

func main() {
	app := &cli.App{
		Name:    "sixtyfiveohtwo",
		Usage:   "run a 6502 program against the core",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "program",
				Aliases:  []string{"p"},
				Usage:    "file of whitespace-separated hex byte pairs",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "origin",
				Usage: "load address and reset-vector target",
				Value: 0x0600,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print a register/flag dump after every tick",
			},
			&cli.UintFlag{
				Name:  "max-ticks",
				Usage: "stop after this many ticks regardless of halt state (0 = unbounded)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "launch the interactive debugger instead of free-running",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	raw, err := os.ReadFile(c.String("program"))
	if err != nil {
		return errors.Wrap(err, "reading program file")
	}

	origin := uint16(c.Uint("origin"))

	bus := &mem.Bus{}
	core := cpu.New(bus)
	if err := core.LoadProgram(raw, origin); err != nil {
		return errors.Wrap(err, "loading program")
	}
	bus.Write(cpu.ResetVector, byte(origin))
	bus.Write(cpu.ResetVector+1, byte(origin>>8))
	core.Reset()

	if c.Bool("debug") {
		core.Debug(raw, origin)
		return nil
	}

	maxTicks := c.Uint("max-ticks")
	trace := c.Bool("trace")

	for n := uint64(0); maxTicks == 0 || n < uint64(maxTicks); n++ {
		if core.Halted {
			break
		}
		if err := core.Tick(); err != nil {
			return errors.Wrap(err, "tick")
		}
		if trace {
			regs := *core
			regs.Bus = nil // registers and flags only, not the 64 kB memory
			fmt.Println(spew.Sdump(regs))
		}
	}

	return nil
}
