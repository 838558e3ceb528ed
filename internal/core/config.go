package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic layouts.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	TickRate   int // Animation ticks per second (default 30)
	Multiplier int // Generator multiplier, 0 means use the game config
	Increment  int // Generator increment, 0 means use the game config
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is waiting on something other than play input
}

// EventKind classifies something that happened during a step.
type EventKind int

const (
	EventInfo    EventKind = iota // Help text, board print, unknown command
	EventBlocked                  // A move was rejected at the board edge
	EventDamage                   // The player lost a life
	EventEnd                      // The game reached a terminal state
)

// Event is a message a game emits for the platform to display or log.
type Event struct {
	Kind EventKind
	Text string
}

// StepResult is returned by Game.Step() after each input.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether any event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
