package core

// RuntimeConfig contains the settings a game session is built with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in frontend units (pixels or characters)
	ScreenH  int   // Screen height in frontend units
	TickRate int   // Frames per second (default 60)
	Seed     int64 // Terrain seed, 0 means use current time
	MaxDelta float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		MaxDelta: 0.1,
	}
}

// ClampDelta bounds a frame's elapsed time so a stall does not teleport
// the camera or skip the opening.
func (c RuntimeConfig) ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}
