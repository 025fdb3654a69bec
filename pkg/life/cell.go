package life

// CellState is the value stored for every coordinate of a grid.
type CellState struct {
	Alive bool
}

var (
	// Dead is the zero CellState.
	Dead = CellState{}
	// Live is an alive CellState.
	Live = CellState{Alive: true}
)

// Toggled returns the state with Alive flipped.
func (s CellState) Toggled() CellState { return CellState{Alive: !s.Alive} }

func (s CellState) byte() uint8 {
	if s.Alive {
		return 1
	}
	return 0
}
