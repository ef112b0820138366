// Package contract declares the read-only views gameplay modules publish to
// each other through registry.Provide. Each value has exactly one writer: the
// module that provides it.
package contract

import "github.com/vovakirdan/skyscroll/internal/collision"

// Avatar is the player-controlled object.
type Avatar interface {
	// Body is the avatar's hit map at its current world position.
	Body() collision.Body
	// VelocityY is the vertical speed in px/ms, positive downwards.
	VelocityY() float64
}

// Thrust reports whether the avatar should accelerate upwards this tick.
type Thrust interface {
	Pressed() bool
}

// Score exposes the running total of the current run and the best total
// since the game was created.
type Score interface {
	Total() int
	Best() int
}
