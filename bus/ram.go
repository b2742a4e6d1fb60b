package bus

// RAM is a flat byte-addressable Device covering the inclusive range
// [min, max]. It is the default Device implementation, used wherever a test
// or driver just needs ordinary read/write memory.
type RAM struct {
	min, max uint16
	data     []uint8
}

// NewRAM allocates a RAM device spanning the inclusive range [min, max].
func NewRAM(min, max uint16) *RAM {
	if max < min {
		panic("bus: RAM max must be >= min")
	}
	return &RAM{min: min, max: max, data: make([]uint8, int(max-min)+1)}
}

// Min implements Device.
func (r *RAM) Min() uint16 { return r.min }

// Max implements Device.
func (r *RAM) Max() uint16 { return r.max }

// Read implements Device.
func (r *RAM) Read(addr uint16) uint8 { return r.data[addr-r.min] }

// Write implements Device.
func (r *RAM) Write(addr uint16, val uint8) { r.data[addr-r.min] = val }
