package armada

// Players. Zero means "nobody", which is what Winner returns until the game ends.
const (
	PLAYER_ONE = iota + 1
	PLAYER_TWO
)

// OtherPlayer returns the opponent of player.
func OtherPlayer(player int) int {
	if player == PLAYER_ONE {
		return PLAYER_TWO
	}

	return PLAYER_ONE
}

// Match phases
const (
	PHASE_PLACEMENT_ONE = iota + 1
	PHASE_PLACEMENT_TWO
	PHASE_BATTLE
	PHASE_INTERSTITIAL
	PHASE_GAMEOVER
)

var phaseNames = map[int]string{
	PHASE_PLACEMENT_ONE: "placement (player 1)",
	PHASE_PLACEMENT_TWO: "placement (player 2)",
	PHASE_BATTLE:        "battle",
	PHASE_INTERSTITIAL:  "interstitial",
	PHASE_GAMEOVER:      "game over",
}

// PhaseName returns a readable name for logging.
func PhaseName(phase int) string {
	name, ok := phaseNames[phase]
	if !ok {
		return "unknown"
	}

	return name
}

// IsPlacement reports whether phase is one of the two placement rounds.
func IsPlacement(phase int) bool {
	return phase == PHASE_PLACEMENT_ONE || phase == PHASE_PLACEMENT_TWO
}
