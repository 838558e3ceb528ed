package minefield

import "fmt"

// Phase is where a play-through is in its lifecycle.
type Phase string

const (
	PhaseReady      Phase = "ready"       // No Setup yet
	PhaseInProgress Phase = "in_progress" // Accepting moves
	PhaseWon        Phase = "won"         // Player reached the goal
	PhaseLost       Phase = "lost"        // Lives ran out
	PhaseAbandoned  Phase = "abandoned"   // Driver stopped early; never set by Engine
)

// Terminal reports whether no further moves can change the outcome.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// State is a snapshot of a play-through. It is returned by value and
// never aliases engine storage.
type State struct {
	Lives      int
	Moves      int
	Position   int
	GameOver   bool
	StartLives int
	Hazards    int
	Phase      Phase
}

// Outcome returns the end-of-game message for the state.
// A state that is not over is treated as a quit.
func (s State) Outcome() string {
	switch {
	case !s.GameOver:
		return "Thanks for playing!"
	case s.Lives == 0:
		return "Unfortunately you ran out of lives!"
	case s.Lives == s.StartLives:
		return fmt.Sprintf("Amazing, you completed the game in %d moves without losing any lives!", s.Moves)
	default:
		return fmt.Sprintf("Congratulations! You completed the game in %d moves.", s.Moves)
	}
}
