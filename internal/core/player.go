package core

// PlayerID identifies one of the two heroes of a session.
// Player1 is the primary hero, Player2 the secondary one.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}
