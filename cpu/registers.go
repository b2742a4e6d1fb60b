package cpu

// Flag bit masks for the processor status register P, LSB to MSB: Carry,
// Zero, Interrupt-disable, Decimal, Break, Unused, Overflow, Negative.
const (
	FlagCarry    uint8 = 0x01
	FlagZero     uint8 = 0x02
	FlagInterupt uint8 = 0x04
	FlagDecimal  uint8 = 0x08
	FlagBreak    uint8 = 0x10
	FlagUnused   uint8 = 0x20
	FlagOverflow uint8 = 0x40
	FlagNegative uint8 = 0x80
)

// Registers holds the 6502's visible register set: accumulator, index
// registers, stack pointer, program counter, and packed status flags.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8
}

// GetFlag reports whether the bit(s) in mask are set in P.
func (r *Registers) GetFlag(mask uint8) bool {
	return r.P&mask != 0
}

// SetFlag sets or clears the bit(s) in mask within P, leaving every other
// bit untouched.
func (r *Registers) SetFlag(mask uint8, set bool) {
	if set {
		r.P |= mask
	} else {
		r.P &^= mask
	}
}

// setZN sets the Zero and Negative flags from an 8-bit result, the rule
// shared by nearly every load, transfer, and arithmetic instruction.
func (r *Registers) setZN(v uint8) {
	r.SetFlag(FlagZero, v == 0)
	r.SetFlag(FlagNegative, v&0x80 != 0)
}

// Reset zeroes A, X, Y, and SP, sets P to have only the Unused flag set,
// and assigns PC the given value.
func (r *Registers) Reset(pc uint16) {
	r.A, r.X, r.Y, r.SP = 0, 0, 0, 0
	r.P = FlagUnused
	r.PC = pc
}
