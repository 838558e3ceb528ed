package minefield

// Cell is the marker stored for each board position.
type Cell int

const (
	CellEmpty   Cell = iota // Not yet visited, no hazard
	CellVisited             // Previously occupied by the player
	CellPlayer              // Current player position
	CellHazard              // Hidden hazard, costs a life once
	CellGoal                // Top-right target cell
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellVisited:
		return "Visited"
	case CellPlayer:
		return "Player"
	case CellHazard:
		return "Hazard"
	case CellGoal:
		return "Goal"
	default:
		return "Invalid"
	}
}

// Visual characters for the board
const (
	PlayerChar  = '*'
	VisitedChar = ' '
	GoalChar    = 'G'
	HiddenChar  = '?'
	HazardChar  = 'X' // Only shown when the board is revealed
)

// Symbol returns the board character for the cell.
// Hazards look like unvisited cells unless reveal is set.
func (c Cell) Symbol(reveal bool) rune {
	switch c {
	case CellPlayer:
		return PlayerChar
	case CellVisited:
		return VisitedChar
	case CellGoal:
		return GoalChar
	case CellHazard:
		if reveal {
			return HazardChar
		}
	}
	return HiddenChar
}
