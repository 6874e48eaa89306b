package rubik

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	logger      *log.Logger
	moveHistory bool
	observers   []Observer
}

func defaultConfig() *config {
	return &config{
		logger:      log.New(io.Discard),
		moveHistory: true,
	}
}

// WithLogger sets the logger used for move-level debug output.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMoveHistory enables or disables the performed-moves log.
// When enabled (default), LastPerformedMoves returns every move applied since
// the cube was last solved. Disable this for long-running simulations.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherConfig)

type dispatcherConfig struct {
	logger  *log.Logger
	backlog int
}

func defaultDispatcherConfig() *dispatcherConfig {
	return &dispatcherConfig{
		logger:  log.New(io.Discard),
		backlog: 16,
	}
}

// WithDispatchLogger sets the logger used for batch start/finish output.
func WithDispatchLogger(l *log.Logger) DispatcherOption {
	return func(c *dispatcherConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBacklog sizes the initial batch queue. The queue grows as needed.
func WithBacklog(n int) DispatcherOption {
	return func(c *dispatcherConfig) {
		if n > 0 {
			c.backlog = n
		}
	}
}
