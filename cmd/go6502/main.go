// Command go6502 loads a flat binary image, wires it to a 6502 core over a
// flat-RAM bus, and either runs it to completion while tracing, or drops
// into the interactive debugger.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go6502/bus"
	"go6502/cpu"
	"go6502/debugger"
	"go6502/loader"
	"go6502/trace"
)

func main() {
	var (
		image    = flag.String("image", "", "path to a flat binary program image (required)")
		loadAddr = flag.Uint("load-addr", 0x0000, "address at which to load the image")
		startPC  = flag.Uint("start-pc", 0, "entry PC; if 0, the reset vector at $FFFC is used instead")
		maxSteps = flag.Int("max-steps", 1_000_000, "instruction budget before giving up (0 = unlimited)")
		traceOn  = flag.Bool("trace", false, "log one line per retired instruction to stderr")
		interact = flag.Bool("debug", false, "launch the interactive single-step debugger instead of running to completion")
	)
	flag.Parse()

	if *image == "" {
		fmt.Fprintln(os.Stderr, "go6502: -image is required")
		os.Exit(2)
	}

	f, err := os.Open(*image)
	if err != nil {
		log.Fatalf("go6502: %v", err)
	}
	defer f.Close()

	ram := bus.NewRAM(0x0000, 0xFFFF)
	if err := loader.LoadReader(ram, uint16(*loadAddr), f); err != nil {
		log.Fatalf("go6502: loading image: %v", err)
	}

	var c *cpu.CPU
	if *startPC != 0 {
		loader.PatchResetVector(ram, uint16(*startPC))
	}
	c = cpu.New(ram)

	if *traceOn {
		c.SetTraceHook(trace.NewLogger(os.Stderr).Log)
	}

	if *interact {
		if err := debugger.Run(c); err != nil {
			log.Fatalf("go6502: %v", err)
		}
		return
	}

	run(c, *maxSteps)
}

// run steps c one instruction at a time (draining its cycle tail each
// time) until it halts on an error, PC stops advancing, or steps is
// exhausted.
func run(c *cpu.CPU, steps int) {
	// Tick off the reset cycles first so the stall check below compares
	// PCs across a real instruction.
	for c.CyclesRemaining() > 0 {
		if err := c.Tick(); err != nil {
			log.Fatalf("go6502: halted: %v", err)
		}
	}
	for i := 0; steps == 0 || i < steps; i++ {
		prevPC := c.Regs.PC
		if err := c.Tick(); err != nil {
			log.Fatalf("go6502: halted: %v", err)
		}
		for c.CyclesRemaining() > 0 {
			if err := c.Tick(); err != nil {
				log.Fatalf("go6502: halted: %v", err)
			}
		}
		if c.Regs.PC == prevPC {
			fmt.Printf("go6502: PC stalled at $%04X after %d instructions\n", c.Regs.PC, i+1)
			return
		}
	}
	fmt.Printf("go6502: step budget exhausted at $%04X\n", c.Regs.PC)
}
