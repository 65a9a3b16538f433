// Package mem provides the flat 64 KiB memory bus a Cpu is bound to.
package mem

// A Bus is the central (global) object that connects multiple 'hardware'
// components together, enabling communication between them. Each Bus has an
// independent memory layout that begins at 0x0000.
//
// This core only ever needs one Bus: a flat 64 kB space responsible for
// RAM, ROM, and anything else the embedder chooses to map there. The core
// never interprets or restricts an address; any value in 0x0000-0xffff is
// legal to read or write.
type Bus struct {
	// no divisions/mirroring of memory; the Cpu sees one flat space
	FakeRam [64 * 1024]byte // 64 kB (0xffff), zeroed on init
}

// Write stores data at addr.
func (b *Bus) Write(
	addr uint16, // addresses are 2 bytes wide
	data byte,
) {
	b.FakeRam[addr] = data
}

// Read returns the byte stored at addr. Reads are side-effect-free: unlike
// a full NES bus, nothing here is a register with read side effects, so
// there is no "readonly peek" distinction to make.
func (b *Bus) Read(addr uint16) byte { return b.FakeRam[addr] }
