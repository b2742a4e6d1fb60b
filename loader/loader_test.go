package loader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go6502/bus"
)

func TestLoadPlacesBytesAtOffset(t *testing.T) {
	ram := bus.NewRAM(0x0000, 0xFFFF)
	Load(ram, 0x8000, []byte{0xA2, 0x0A, 0x8E})

	assert.Equal(t, uint8(0xA2), ram.Read(0x8000))
	assert.Equal(t, uint8(0x0A), ram.Read(0x8001))
	assert.Equal(t, uint8(0x8E), ram.Read(0x8002))
	assert.Equal(t, uint8(0), ram.Read(0x8003))
}

func TestLoadReaderDoesNotDisturbOutsideRange(t *testing.T) {
	ram := bus.NewRAM(0x0000, 0xFFFF)
	ram.Write(0x0100, 0x55)

	require.NoError(t, LoadReader(ram, 0x0400, bytes.NewReader([]byte{1, 2, 3})))

	assert.Equal(t, uint8(0x55), ram.Read(0x0100))
	assert.Equal(t, uint8(1), ram.Read(0x0400))
	assert.Equal(t, uint8(3), ram.Read(0x0402))
}

func TestPatchResetVectorLittleEndian(t *testing.T) {
	ram := bus.NewRAM(0x0000, 0xFFFF)
	PatchResetVector(ram, 0x0400)

	assert.Equal(t, uint8(0x00), ram.Read(0xFFFC))
	assert.Equal(t, uint8(0x04), ram.Read(0xFFFD))
}
