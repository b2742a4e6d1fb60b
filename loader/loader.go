// Package loader places program images into a bus.Device, the job spec.md
// explicitly keeps out of the CPU core's scope (§1(b)): the core only
// executes whatever bytes are already sitting in memory when Tick runs.
package loader

import (
	"io"

	"go6502/bus"
)

// Load writes data into dev starting at addr, generalizing the teacher's
// LoadProgram (which parsed a whitespace-separated hex string) to raw
// bytes, since conformance ROMs ship as flat binaries rather than hex
// text.
func Load(dev bus.Device, addr uint16, data []byte) {
	for i, b := range data {
		dev.Write(addr+uint16(i), b)
	}
}

// LoadReader drains r and writes its bytes into dev starting at addr.
func LoadReader(dev bus.Device, addr uint16, r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	Load(dev, addr, buf)
	return nil
}

// PatchResetVector writes pc little-endian into the reset vector
// (0xFFFC/0xFFFD), the convention spec.md §6 describes for images that
// rely on the parameterless Reset entry point instead of an explicit PC.
func PatchResetVector(dev bus.Device, pc uint16) {
	dev.Write(0xFFFC, uint8(pc))
	dev.Write(0xFFFD, uint8(pc>>8))
}
