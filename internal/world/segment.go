package world

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/vovakirdan/skyscroll/internal/core"
)

// SegmentBuilder is created fresh for every generated world segment and
// handed to modules through the PrepareSegment event. It must not be kept
// after the event returns.
type SegmentBuilder struct {
	StartX int
	EndX   int
	RNG    *RNG

	reserved []core.Rect
}

// NewSegmentBuilder creates a builder whose RNG is seeded with startX, so the
// same segment gets the same content on every run.
func NewSegmentBuilder(startX, endX int) *SegmentBuilder {
	return &SegmentBuilder{
		StartX:   startX,
		EndX:     endX,
		RNG:      NewRNG(int64(startX)),
		reserved: make([]core.Rect, 0, 8),
	}
}

// Width returns the segment width in world pixels.
func (b *SegmentBuilder) Width() int {
	return b.EndX - b.StartX
}

// ReserveSpace claims a rectangle in world coordinates. It succeeds and
// records the rectangle iff it overlaps no earlier reservation. A rejected
// request leaves the builder unchanged.
func (b *SegmentBuilder) ReserveSpace(x, y, w, h int) bool {
	r := core.NewRect(x, y, w, h)
	if r.Empty() {
		return false
	}
	for _, existing := range b.reserved {
		if r.Intersects(existing) {
			return false
		}
	}
	b.reserved = append(b.reserved, r)
	return true
}

// Reserved returns a copy of the accepted reservations in acceptance order.
func (b *SegmentBuilder) Reserved() []core.Rect {
	out := make([]core.Rect, len(b.reserved))
	copy(out, b.reserved)
	return out
}

// Fingerprint hashes the segment bounds and accepted reservations.
// Two runs that generate the same segment produce the same fingerprint.
func (b *SegmentBuilder) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	write(b.StartX)
	write(b.EndX)
	for _, r := range b.reserved {
		write(r.X)
		write(r.Y)
		write(r.W)
		write(r.H)
	}
	return h.Sum64()
}
