// Package bus implements the memory-mapped address bus that connects a 6502
// core to its attached devices.
//
// A Bus has no memory of its own; it exists only to route reads and writes
// to whichever Device claims a given address. This mirrors the real chip,
// which drives an address/data bus and lets external logic decide what
// answers back.
package bus

import "fmt"

// A Device is a memory-mapped unit attached to a Bus. Min and Max describe
// the inclusive address range the device claims.
type Device interface {
	Min() uint16
	Max() uint16
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// UnmappedError is returned when an address falls outside every attached
// Device's range.
type UnmappedError struct {
	Addr uint16
}

// Error implements the error interface.
func (e UnmappedError) Error() string {
	return fmt.Sprintf("bus: unmapped address 0x%04X", e.Addr)
}

// A Bus dispatches reads and writes to the first Device (in attachment
// order) whose range contains the address. Ranges may be disjoint or
// overlap; on overlap the earliest-attached Device wins.
type Bus struct {
	devices []Device

	// OnAccess, if non-nil, is called once per successful Read or Write.
	// The CPU installs this to charge one cycle per bus transfer.
	OnAccess func()
}

// New constructs a Bus from an ordered list of devices.
func New(devices ...Device) *Bus {
	return &Bus{devices: append([]Device(nil), devices...)}
}

// Attach appends a device to the end of the dispatch order.
func (b *Bus) Attach(d Device) {
	b.devices = append(b.devices, d)
}

func (b *Bus) find(addr uint16) Device {
	for _, d := range b.devices {
		if addr >= d.Min() && addr <= d.Max() {
			return d
		}
	}
	return nil
}

// Read masks addr to 16 bits, finds the owning device, and returns its
// byte. Returns UnmappedError if no device claims addr.
func (b *Bus) Read(addr uint16) (uint8, error) {
	addr &= 0xFFFF
	d := b.find(addr)
	if d == nil {
		return 0, UnmappedError{Addr: addr}
	}
	v := d.Read(addr)
	if b.OnAccess != nil {
		b.OnAccess()
	}
	return v, nil
}

// Write masks addr to 16 bits and val to 8 bits, then delegates to the
// owning device. Returns UnmappedError if no device claims addr.
func (b *Bus) Write(addr uint16, val uint8) error {
	addr &= 0xFFFF
	val &= 0xFF
	d := b.find(addr)
	if d == nil {
		return UnmappedError{Addr: addr}
	}
	d.Write(addr, val)
	if b.OnAccess != nil {
		b.OnAccess()
	}
	return nil
}
