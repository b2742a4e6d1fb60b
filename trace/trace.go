// Package trace formats per-instruction diagnostic lines for a cpu.CPU.
// Tracing is purely observational (spec.md §1(d), §6): a CPU with no trace
// hook installed pays no cost and the core's functional behavior never
// depends on whether a Logger is attached.
package trace

import (
	"fmt"
	"io"

	"go6502/cpu"
)

var modeNames = [...]string{
	cpu.Implicit:    "impl",
	cpu.Accumulator: "acc",
	cpu.Immediate:   "imm",
	cpu.ZeroPage:    "zp",
	cpu.ZeroPageX:   "zp,x",
	cpu.ZeroPageY:   "zp,y",
	cpu.Absolute:    "abs",
	cpu.AbsoluteX:   "abs,x",
	cpu.AbsoluteY:   "abs,y",
	cpu.Indirect:    "ind",
	cpu.Relative:    "rel",
	cpu.IndirectX:   "(zp,x)",
	cpu.IndirectY:   "(zp),y",
}

// Logger writes one line per Trace it receives to an underlying
// io.Writer: PC, opcode byte, mnemonic, addressing mode, and cycles
// remaining. Registers and flags are not printed.
type Logger struct {
	w io.Writer
}

// NewLogger wraps w. Attach the returned Logger's Log method to a CPU via
// cpu.CPU.SetTraceHook to start tracing.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Log formats and writes a single Trace line.
func (l *Logger) Log(tr cpu.Trace) {
	mode := "?"
	if int(tr.Mode) < len(modeNames) {
		mode = modeNames[tr.Mode]
	}
	fmt.Fprintf(l.w, "%04X  %02X  %-3s %-6s cyc=%d\n",
		tr.PC, tr.Opcode, tr.Mnemonic, mode, tr.CyclesRemaining)
}
