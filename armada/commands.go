package armada

const (
	RESULT_REJECTED = iota + 1
	RESULT_APPLIED
	RESULT_PHASE_CHANGED
)

// Result is what a Match reports back after a command. Rejected commands change
// nothing; they are an ordinary outcome, not an error.
type Result struct {
	Kind int
	// Phase after the command ran
	Phase int
	// Only set for an accepted fire
	Shot *ShotReport
}

func (r Result) Accepted() bool {
	return r.Kind != RESULT_REJECTED
}

// ShotReport describes one accepted shot.
type ShotReport struct {
	Shooter int
	Target  Coord
	Hit     bool
	// Whether this shot sank the ship it hit
	Sunk bool
	// Kind of the ship that was hit, -1 on a miss
	ShipKind int
}

// Command is one discrete player action. The input layer creates one command per
// logical key press and hands it to Match.Apply.
type Command interface {
	apply(m *Match) Result

	Name() string
}

type MoveCursorCommand struct {
	DX int
	DY int
}

func (c MoveCursorCommand) Name() string { return "move_cursor" }

func (c MoveCursorCommand) apply(m *Match) Result {
	board := m.activeBoard()
	if board == nil || !(IsPlacement(m.phase) || m.phase == PHASE_BATTLE) {
		return m.rejected()
	}

	board.MoveCursor(c.DX, c.DY)
	return m.applied()
}

type RotateCommand struct {
	// Quarter turns, positive is clockwise on screen
	Delta int
}

func (c RotateCommand) Name() string { return "rotate_ship" }

func (c RotateCommand) apply(m *Match) Result {
	if !IsPlacement(m.phase) {
		return m.rejected()
	}

	if !m.activeBoard().RotateShip(c.Delta) {
		return m.rejected()
	}

	return m.applied()
}

type PlaceCommand struct{}

func (c PlaceCommand) Name() string { return "place_ship" }

func (c PlaceCommand) apply(m *Match) Result {
	if !IsPlacement(m.phase) {
		return m.rejected()
	}

	board := m.activeBoard()
	if !board.PlaceShip() {
		return m.rejected()
	}

	if !board.IsReady() {
		return m.applied()
	}

	switch m.phase {
	case PHASE_PLACEMENT_ONE:
		m.setPhase(PHASE_PLACEMENT_TWO)
	case PHASE_PLACEMENT_TWO:
		// player two opens fire
		m.shooter = PLAYER_TWO
		m.setPhase(PHASE_BATTLE)
	}

	return m.phaseChanged()
}

type FireCommand struct{}

func (c FireCommand) Name() string { return "fire" }

func (c FireCommand) apply(m *Match) Result {
	if m.phase != PHASE_BATTLE {
		return m.rejected()
	}

	return m.fire()
}

type ConfirmCommand struct{}

func (c ConfirmCommand) Name() string { return "confirm_interstitial" }

func (c ConfirmCommand) apply(m *Match) Result {
	if m.phase != PHASE_INTERSTITIAL {
		return m.rejected()
	}

	m.shooter = m.nextShooter
	m.nextShooter = 0
	m.Board(m.shooter).ResetCursor()
	m.setPhase(PHASE_BATTLE)

	return m.phaseChanged()
}
