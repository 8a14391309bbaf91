package remote

import "time"

// DefaultCommandDelay is the pause after each frame, giving the brick time to
// process the command before the next one arrives.
const DefaultCommandDelay = 100 * time.Millisecond

// Config holds the sender configuration.
type Config struct {
	// SentCallback is called after every frame written (optional)
	SentCallback SentCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// CommandDelay is the pause after each written frame; zero disables it
	CommandDelay time.Duration

	// ValidateBeforeSend checks every encoded frame before it is written
	ValidateBeforeSend bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		CommandDelay:       DefaultCommandDelay,
		ValidateBeforeSend: true,
	}
}

// Option is a functional option for configuring the Sender.
type Option func(*Config)

// WithSentCallback sets a callback receiving every frame written, e.g. for a
// packet viewer.
//
// Example:
//
//	s := remote.New(port,
//	    remote.WithSentCallback(func(p remote.Packet) {
//	        fmt.Printf("%s: % X\n", p.Action, p.Frame)
//	    }),
//	)
func WithSentCallback(callback SentCallback) Option {
	return func(c *Config) {
		c.SentCallback = callback
	}
}

// WithLogger sets a logger for the sender operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithCommandDelay sets the pause after each written frame.
// Zero disables the delay; negative values are ignored.
//
// Example:
//
//	s := remote.New(port, remote.WithCommandDelay(250*time.Millisecond))
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithValidateBeforeSend enables or disables the integrity check of encoded
// frames before writing. Default is true.
func WithValidateBeforeSend(validate bool) Option {
	return func(c *Config) {
		c.ValidateBeforeSend = validate
	}
}
