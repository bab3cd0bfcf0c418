package snake

// Settings are the tunables of a session. Hosts usually build them from the
// YAML config; DefaultSettings matches the embedded defaults.
type Settings struct {
	TileCount    int       // Cells per side of the square board
	InitialSpeed float64   // Speed selector value before any change, ticks/second
	MinSpeed     float64   // Lower speed clamp
	MaxSpeed     float64   // Upper speed clamp
	SpeedPresets []float64 // Values offered by the speed selector, ascending
	RampEvery    int       // Passive ramp applies while score is a multiple of this
	RampStep     float64   // Passive ramp increment per tick
	QueueLimit   int       // Max buffered steering intents
	ShowGrid     bool      // Initial grid visibility
}

// DefaultSettings returns the classic 20x20 board at medium speed.
func DefaultSettings() Settings {
	return Settings{
		TileCount:    20,
		InitialSpeed: 8,
		MinSpeed:     5,
		MaxSpeed:     25,
		SpeedPresets: []float64{5, 8, 12, 16, 20},
		RampEvery:    5,
		RampStep:     0.01,
		QueueLimit:   DefaultQueueLimit,
	}
}

// normalized fills zero fields with defaults so a partially built Settings
// is still playable.
func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.TileCount <= 0 {
		s.TileCount = d.TileCount
	}
	if s.MinSpeed <= 0 {
		s.MinSpeed = d.MinSpeed
	}
	if s.MaxSpeed < s.MinSpeed {
		s.MaxSpeed = max(d.MaxSpeed, s.MinSpeed)
	}
	if s.InitialSpeed <= 0 {
		s.InitialSpeed = d.InitialSpeed
	}
	if len(s.SpeedPresets) == 0 {
		s.SpeedPresets = d.SpeedPresets
	}
	if s.RampEvery <= 0 {
		s.RampEvery = d.RampEvery
	}
	if s.QueueLimit <= 0 {
		s.QueueLimit = d.QueueLimit
	}
	return s
}
