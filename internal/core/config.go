package core

import "time"

// RuntimeConfig contains host-level settings passed to the terminal and
// desktop hosts. Engine tuning lives in the config package.
type RuntimeConfig struct {
	ScreenW   int           // Terminal width in cells, or window width in pixels
	ScreenH   int           // Terminal height in cells, or window height in pixels
	FrameRate int           // Display frames per second requested from the host
	KeyHold   time.Duration // How long a terminal key press counts as held
	Demo      bool          // Start in attract mode instead of playing
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 30,
		KeyHold:   150 * time.Millisecond,
	}
}
