package armada

import (
	"fmt"

	"github.com/google/uuid"
)

// Match owns both boards and walks them from placement through to game over.
// All mutation goes through Apply, one command at a time. Match does no
// locking of its own, so callers that share one across goroutines must serialize
// their calls.
type Match struct {
	ID uuid.UUID

	player1 *Board
	player2 *Board
	names   [2]string

	phase int
	// Player whose turn it is during battle
	shooter int
	// Player who takes over once the interstitial is confirmed
	nextShooter int
	winner      int

	turn    int
	shotLog []ShotReport
}

// NewMatch starts a match in player one's placement round.
// Blank names fall back to "Player 1" and "Player 2".
func NewMatch(playerOneName, playerTwoName string) *Match {
	if playerOneName == "" {
		playerOneName = "Player 1"
	}
	if playerTwoName == "" {
		playerTwoName = "Player 2"
	}

	m := &Match{
		ID:      uuid.New(),
		player1: NewBoard(),
		player2: NewBoard(),
		names:   [2]string{playerOneName, playerTwoName},
		phase:   PHASE_PLACEMENT_ONE,
		shotLog: make([]ShotReport, 0),
	}

	matchLogger().Info("new match", "match_id", m.ID.String(), "player_one", playerOneName, "player_two", playerTwoName)
	return m
}

// Apply runs a single command against the match.
func (m *Match) Apply(cmd Command) Result {
	before := m.phase
	result := cmd.apply(m)

	logger := matchLogger().WithValues("match_id", m.ID.String(), "command", cmd.Name())
	switch result.Kind {
	case RESULT_REJECTED:
		logger.V(1).Info("command rejected", "phase", PhaseName(m.phase))
	case RESULT_PHASE_CHANGED:
		logger.Info("phase changed", "from", PhaseName(before), "to", PhaseName(m.phase))
	default:
		logger.V(2).Info("command applied")
	}

	return result
}

func (m *Match) MoveCursor(dx, dy int) Result {
	return m.Apply(MoveCursorCommand{DX: dx, DY: dy})
}

func (m *Match) RotateShip(delta int) Result {
	return m.Apply(RotateCommand{Delta: delta})
}

func (m *Match) PlaceShip() Result {
	return m.Apply(PlaceCommand{})
}

func (m *Match) Fire() Result {
	return m.Apply(FireCommand{})
}

func (m *Match) ConfirmInterstitial() Result {
	return m.Apply(ConfirmCommand{})
}

func (m *Match) Phase() int {
	return m.phase
}

// ActivePlayer is the player the next input belongs to: the placer, the shooter,
// the player waiting to take over during the interstitial, or the winner.
func (m *Match) ActivePlayer() int {
	switch m.phase {
	case PHASE_PLACEMENT_ONE:
		return PLAYER_ONE
	case PHASE_PLACEMENT_TWO:
		return PLAYER_TWO
	case PHASE_BATTLE:
		return m.shooter
	case PHASE_INTERSTITIAL:
		return m.nextShooter
	case PHASE_GAMEOVER:
		return m.winner
	}

	return 0
}

// Winner is zero until the match is over.
func (m *Match) Winner() int {
	return m.winner
}

func (m *Match) Turn() int {
	return m.turn
}

// Board returns the board belonging to player.
// Panics on anything other than PLAYER_ONE or PLAYER_TWO.
func (m *Match) Board(player int) *Board {
	switch player {
	case PLAYER_ONE:
		return m.player1
	case PLAYER_TWO:
		return m.player2
	}

	panic(fmt.Sprintf("armada: no such player %d", player))
}

func (m *Match) Opponent(player int) *Board {
	return m.Board(OtherPlayer(player))
}

func (m *Match) PlayerName(player int) string {
	switch player {
	case PLAYER_ONE:
		return m.names[0]
	case PLAYER_TWO:
		return m.names[1]
	}

	return ""
}

// LastShot returns the most recent accepted shot.
func (m *Match) LastShot() (ShotReport, bool) {
	if len(m.shotLog) == 0 {
		return ShotReport{}, false
	}

	return m.shotLog[len(m.shotLog)-1], true
}

// ShotLog returns every accepted shot in order.
func (m *Match) ShotLog() []ShotReport {
	return append([]ShotReport(nil), m.shotLog...)
}

func (m *Match) activeBoard() *Board {
	switch m.phase {
	case PHASE_PLACEMENT_ONE:
		return m.player1
	case PHASE_PLACEMENT_TWO:
		return m.player2
	case PHASE_BATTLE:
		return m.Board(m.shooter)
	}

	return nil
}

func (m *Match) fire() Result {
	shooter := m.Board(m.shooter)
	opponent := m.Opponent(m.shooter)
	target := shooter.Cursor()

	if shooter.HasBeenShot(target) {
		return m.rejected()
	}

	hit := opponent.ResolveShot(target)
	shooter.RecordShotResult(target, hit)

	report := ShotReport{
		Shooter:  m.shooter,
		Target:   target,
		Hit:      hit,
		ShipKind: -1,
	}
	if hit {
		if ship, ok := opponent.ShipAt(target); ok {
			report.ShipKind = ship.Kind()
			report.Sunk = ship.Sunk()
		}
	}

	m.turn++
	m.shotLog = append(m.shotLog, report)

	matchLogger().Info("shot fired",
		"match_id", m.ID.String(),
		"turn", m.turn,
		"shooter", m.PlayerName(m.shooter),
		"target", target.String(),
		"hit", hit,
		"sunk", report.Sunk,
	)

	if opponent.IsDefeated() {
		m.winner = m.shooter
		m.setPhase(PHASE_GAMEOVER)
	} else {
		m.nextShooter = OtherPlayer(m.shooter)
		m.setPhase(PHASE_INTERSTITIAL)
	}

	return Result{
		Kind:  RESULT_PHASE_CHANGED,
		Phase: m.phase,
		Shot:  &report,
	}
}

func (m *Match) setPhase(phase int) {
	m.phase = phase
}

func (m *Match) rejected() Result {
	return Result{Kind: RESULT_REJECTED, Phase: m.phase}
}

func (m *Match) applied() Result {
	return Result{Kind: RESULT_APPLIED, Phase: m.phase}
}

func (m *Match) phaseChanged() Result {
	return Result{Kind: RESULT_PHASE_CHANGED, Phase: m.phase}
}
