package minefield

// Snapshot contains the complete session state for replay tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Size       int
	Cells      []int // Row-major Cell values
	Lives      int
	Moves      int
	Position   int
	StartLives int
	Hazards    int
	GameOver   bool
	Phase      string

	// Generator state
	Multiplier int
	Increment  int
	Draws      int64
}

// Snapshot returns the current session as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.sessionState()
	snap := Snapshot{
		Lives:      st.Lives,
		Moves:      st.Moves,
		Position:   st.Position,
		StartLives: st.StartLives,
		Hazards:    st.Hazards,
		GameOver:   st.GameOver,
		Phase:      string(st.Phase),
		Multiplier: g.multiplier,
		Increment:  g.increment,
	}

	if g.engine != nil {
		snap.Size = g.engine.Size()
		cells := g.engine.Cells()
		snap.Cells = make([]int, len(cells))
		for i, c := range cells {
			snap.Cells[i] = int(c)
		}
	}
	if g.gen != nil {
		snap.Draws = g.gen.Draws()
	}
	return snap
}
