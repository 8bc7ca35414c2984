package game

// Config holds game configuration options.
type Config struct {
	// DefaultName is used when the player enters no name.
	DefaultName string

	// Variance enables rolled damage and rewards instead of fixed values.
	Variance bool

	// Seed for the variance roller. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the fixed-outcome configuration.
func DefaultConfig() Config {
	return Config{DefaultName: "Steve"}
}
