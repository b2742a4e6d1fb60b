package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go6502/bus"
)

// newTestCPU builds a CPU with a single full 64KB RAM device and writes
// prog starting at origin. It also patches the reset vector to origin and
// calls Reset so PC starts at the program, then ticks off the 7 reset
// cycles so the next Tick fetches the first instruction.
func newTestCPU(t *testing.T, origin uint16, prog []byte) (*CPU, *bus.RAM) {
	t.Helper()
	ram := bus.NewRAM(0x0000, 0xFFFF)
	for i, b := range prog {
		ram.Write(origin+uint16(i), b)
	}
	ram.Write(ResetVector, uint8(origin))
	ram.Write(ResetVector+1, uint8(origin>>8))

	c := New(ram)
	for c.CyclesRemaining() > 0 {
		require.NoError(t, c.Tick())
	}
	return c, ram
}

// runUntilFetch executes the given number of instructions. Cycles already
// pending (for example, charged by a test's own c.Bus accesses) are ticked
// off first so each iteration starts on an opcode fetch.
func runUntilFetch(t *testing.T, c *CPU, instructions int) {
	t.Helper()
	for i := 0; i < instructions; i++ {
		for c.CyclesRemaining() > 0 {
			require.NoError(t, c.Tick())
		}
		require.NoError(t, c.Tick())
		for c.CyclesRemaining() > 0 {
			require.NoError(t, c.Tick())
		}
	}
}

func TestLDAImmediateSetsZero(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0xA9, 0x00})
	start := c.Regs.PC
	runUntilFetch(t, c, 1)

	assert.Equal(t, uint8(0), c.Regs.A)
	assert.True(t, c.Regs.GetFlag(FlagZero))
	assert.False(t, c.Regs.GetFlag(FlagNegative))
	assert.Equal(t, start+2, c.Regs.PC)
}

func TestADCOverflowAndCarry(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0xA9, 0x7F, 0x69, 0x01})
	c.Regs.SetFlag(FlagCarry, false)

	runUntilFetch(t, c, 1) // LDA #$7F
	assert.Equal(t, uint8(0x7F), c.Regs.A)

	runUntilFetch(t, c, 1) // ADC #$01
	assert.Equal(t, uint8(0x80), c.Regs.A)
	assert.True(t, c.Regs.GetFlag(FlagOverflow))
	assert.True(t, c.Regs.GetFlag(FlagNegative))
	assert.False(t, c.Regs.GetFlag(FlagCarry))
	assert.False(t, c.Regs.GetFlag(FlagZero))
}

func TestSBCWithBorrow(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0x38, 0xA9, 0x05, 0xE9, 0x03}) // SEC; LDA #$05; SBC #$03
	runUntilFetch(t, c, 3)

	assert.Equal(t, uint8(0x02), c.Regs.A)
	assert.True(t, c.Regs.GetFlag(FlagCarry))
	assert.False(t, c.Regs.GetFlag(FlagOverflow))
	assert.False(t, c.Regs.GetFlag(FlagNegative))
	assert.False(t, c.Regs.GetFlag(FlagZero))
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, nil)
	c.Bus.Write(0x0600, 0x20) // JSR $0700
	c.Bus.Write(0x0601, 0x00)
	c.Bus.Write(0x0602, 0x07)
	c.Bus.Write(0x0603, 0xEA) // NOP
	c.Bus.Write(0x0700, 0x60) // RTS
	c.Regs.SP = 0xFF

	runUntilFetch(t, c, 1) // JSR
	assert.Equal(t, uint16(0x0700), c.Regs.PC)
	assert.Equal(t, uint8(0xFD), c.Regs.SP)

	runUntilFetch(t, c, 1) // RTS
	assert.Equal(t, uint16(0x0603), c.Regs.PC)
	assert.Equal(t, uint8(0xFF), c.Regs.SP)
}

func TestPushPullRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68}) // LDA #$42; PHA; LDA #$00; PLA
	c.Regs.SP = 0xFF
	startSP := c.Regs.SP

	runUntilFetch(t, c, 4)
	assert.Equal(t, uint8(0x42), c.Regs.A)
	assert.Equal(t, startSP, c.Regs.SP)
}

func TestPHPPLPForcesUnusedClearsBreak(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0x08, 0x28}) // PHP; PLP
	c.Regs.SP = 0xFF
	c.Regs.P = FlagCarry | FlagNegative // no Unused, no Break set by user

	runUntilFetch(t, c, 1) // PHP
	pushed := c.Bus // read back the pushed byte directly
	v, err := pushed.Read(StackBase + uint16(c.Regs.SP) + 1)
	require.NoError(t, err)
	assert.NotZero(t, v&FlagBreak)
	assert.NotZero(t, v&FlagUnused)

	runUntilFetch(t, c, 1) // PLP
	assert.True(t, c.Regs.GetFlag(FlagUnused))
	assert.False(t, c.Regs.GetFlag(FlagBreak))
	assert.True(t, c.Regs.GetFlag(FlagCarry))
	assert.True(t, c.Regs.GetFlag(FlagNegative))
}

func TestCompareSetsZeroAndCarry(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0xA9, 0x05, 0xC9, 0x05}) // LDA #$05; CMP #$05
	runUntilFetch(t, c, 2)

	assert.True(t, c.Regs.GetFlag(FlagZero))
	assert.True(t, c.Regs.GetFlag(FlagCarry))
}

func TestBranchPageCrossChargesExtraCycle(t *testing.T) {
	// BEQ with Z set, placed so the byte after the instruction (0x00FF)
	// and the branch target (0x0101) fall on different pages.
	c, _ := newTestCPU(t, 0x00FD, []byte{0xF0, 0x02})
	c.Regs.SetFlag(FlagZero, true)

	require.NoError(t, c.Tick()) // fetch+resolve+execute happens on first tick
	assert.Equal(t, uint16(0x0101), c.Regs.PC)
	// opcode fetch(1) + operand fetch(1) + taken(1) + page cross(1) = 4, minus the 1 just consumed this tick.
	assert.Equal(t, 3, c.CyclesRemaining())
}

func TestBranchNotTakenNoExtraCycle(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0xF0, 0x02}) // BEQ, Z clear
	c.Regs.SetFlag(FlagZero, false)

	require.NoError(t, c.Tick())
	assert.Equal(t, uint16(0x0602), c.Regs.PC)
	assert.Equal(t, 1, c.CyclesRemaining())
}

func TestResetClearsRegistersAndPrimesCycles(t *testing.T) {
	c, _ := newTestCPU(t, 0x1234, nil)
	c.Regs.A, c.Regs.X, c.Regs.Y, c.Regs.SP = 1, 2, 3, 4

	c.ResetTo(0xABCD)
	assert.Equal(t, uint8(0), c.Regs.A)
	assert.Equal(t, uint8(0), c.Regs.X)
	assert.Equal(t, uint8(0), c.Regs.Y)
	assert.Equal(t, uint8(0), c.Regs.SP)
	assert.Equal(t, uint8(FlagUnused), c.Regs.P)
	assert.Equal(t, uint16(0xABCD), c.Regs.PC)
	assert.Equal(t, 7, c.CyclesRemaining())
}

func TestIllegalOpcodeHalts(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0x02}) // 0x02 is not assigned
	err := c.Tick()
	require.Error(t, err)
	var ioe IllegalOpcodeError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, uint8(0x02), ioe.Opcode)
}

func TestBusUnmappedHalts(t *testing.T) {
	ram := bus.NewRAM(0x0000, 0x00FF) // PC will walk off the mapped range
	vectors := bus.NewRAM(ResetVector, 0xFFFF)
	vectors.Write(ResetVector, 0x00)
	vectors.Write(ResetVector+1, 0x00)
	c := New(ram, vectors)
	for c.CyclesRemaining() > 0 {
		require.NoError(t, c.Tick())
	}
	c.Regs.PC = 0x0200

	err := c.Tick()
	require.Error(t, err)
	var buerr BusUnmappedError
	require.ErrorAs(t, err, &buerr)
}

func TestShiftRotateInverse(t *testing.T) {
	// ROL then ROR with the carry restored to its pre-ROL value should be
	// the identity on the accumulator.
	c, _ := newTestCPU(t, 0x0600, []byte{0xA9, 0x55, 0x2A, 0x6A}) // LDA #$55; ROL A; ROR A
	c.Regs.SetFlag(FlagCarry, false)

	runUntilFetch(t, c, 1) // LDA
	original := c.Regs.A
	startCarry := c.Regs.GetFlag(FlagCarry)

	runUntilFetch(t, c, 1) // ROL
	carryAfterROL := c.Regs.GetFlag(FlagCarry)
	c.Regs.SetFlag(FlagCarry, startCarry)
	_ = carryAfterROL

	runUntilFetch(t, c, 1) // ROR
	assert.Equal(t, original, c.Regs.A)
}

func TestTraceHookFiresOncePerInstruction(t *testing.T) {
	c, _ := newTestCPU(t, 0x0600, []byte{0xEA, 0xEA}) // NOP; NOP
	var traces []Trace
	c.SetTraceHook(func(tr Trace) { traces = append(traces, tr) })

	runUntilFetch(t, c, 2)
	require.Len(t, traces, 2)
	assert.Equal(t, "NOP", traces[0].Mnemonic)
}
