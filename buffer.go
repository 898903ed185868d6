package swifft

import "unsafe"

// alignment is the byte alignment spec §3 requires of every input/output
// buffer, to allow vectorised loads/stores in a future SIMD path (spec
// §9's "Vectorisation hint").
const alignment = 64

// alignedBytes returns a size-byte slice whose first byte sits at a
// 64-byte-aligned address, by over-allocating and slicing into the
// backing array at the first aligned offset. Go has no
// `#[repr(align(N))]` equivalent for a plain byte array, so this is the
// idiomatic stand-in the pack's GPU-adjacent code reaches for (see
// luxfi/tfhe's gpu/memory.go, which over-allocates host buffers before
// handing them to aligned DMA/cgo calls) -- adapted here for CPU-side
// slices with no cgo involved.
func alignedBytes(size int) []byte {
	buf := make([]byte, size+alignment-1)
	misalign := uintptr(unsafe.Pointer(&buf[0])) % alignment
	offset := uintptr(0)
	if misalign != 0 {
		offset = alignment - misalign
	}
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// isAligned reports whether the first byte of b sits at a 64-byte
// boundary.
func isAligned(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))%alignment == 0
}

// InBlock is a 256-byte, 64-byte-aligned input block: 2048 bits, parsed
// per spec §3 into 16 logical polynomials of 64 binary coefficients.
type InBlock struct{ buf []byte }

// SignBlock pairs with an InBlock to expand the input alphabet to
// {-1, 0, 1} (spec §3, §4.5). Same wire shape as InBlock.
type SignBlock struct{ buf []byte }

// InBlockSize is the wire size of both InBlock and SignBlock.
const InBlockSize = 256

// NewInBlock allocates a zeroed, aligned InBlock.
func NewInBlock() *InBlock { return &InBlock{buf: alignedBytes(InBlockSize)} }

// NewSignBlock allocates a zeroed, aligned SignBlock.
func NewSignBlock() *SignBlock { return &SignBlock{buf: alignedBytes(InBlockSize)} }

// Bytes exposes the underlying 256-byte aligned buffer for the caller to
// fill in wire order (spec §6: "bit index b ... at byte b/8").
func (b *InBlock) Bytes() []byte { return b.buf }

// Bytes exposes the underlying 256-byte aligned buffer.
func (b *SignBlock) Bytes() []byte { return b.buf }

// InBlockFromBytes wraps an existing 256-byte slice as an InBlock without
// copying, panicking if it isn't 64-byte aligned or the wrong length --
// the contract-violation path spec §7 describes as "undefined behaviour
// otherwise", guarded here with a debug-style assertion rather than
// silently doing the wrong thing.
func InBlockFromBytes(b []byte) *InBlock {
	mustValidBlock(b)
	return &InBlock{buf: b}
}

// SignBlockFromBytes is the SignBlock equivalent of InBlockFromBytes.
func SignBlockFromBytes(b []byte) *SignBlock {
	mustValidBlock(b)
	return &SignBlock{buf: b}
}

func mustValidBlock(b []byte) {
	if len(b) != InBlockSize {
		panic("swifft: block must be 256 bytes")
	}
	if !isAligned(b) {
		panic("swifft: block must be 64-byte aligned")
	}
}

// DigestSize is the wire size of a Digest: 64 coefficients, 16 bits each,
// little-endian (spec §6).
const DigestSize = 128

// Digest is the 1024-bit SWIFFT compression output. Composable under
// addition in R (see the digest-arithmetic Non-goal in spec §1: the
// element-wise add/sub/mul of two digests is an external collaborator's
// concern, not implemented here).
type Digest Poly

// Bytes serializes a Digest to its 128-byte little-endian wire form: word
// i holds coefficient i, high 7 bits always zero (spec §6).
func (d Digest) Bytes() []byte {
	out := alignedBytes(DigestSize)
	for i, c := range d {
		out[2*i] = byte(c)
		out[2*i+1] = byte(c >> 8)
	}
	return out
}

// DigestFromBytes parses a 128-byte digest back into a Digest.
func DigestFromBytes(b []byte) Digest {
	if len(b) != DigestSize {
		panic("swifft: digest must be 128 bytes")
	}
	var d Digest
	for i := range d {
		d[i] = fieldElement(b[2*i]) | fieldElement(b[2*i+1])<<8
	}
	return d
}

// CompactDigestSize is the wire size of a CompactDigest: 512 bits.
const CompactDigestSize = 64

// CompactDigest is the lossy 512-bit packing of a Digest (spec §4.7).
// Not composable under addition -- see spec §9's Open Question, resolved
// in DESIGN.md.
type CompactDigest [CompactDigestSize]byte
