package game

// Winner reports the winning player, if any. A player without an active
// Investor is eliminated; the game is won once exactly one player is.
func Winner(b *Board) (string, bool) {
	investors := make(map[string]int)
	for _, p := range b.Pieces() {
		if p.Type == Investor {
			investors[p.OwnerID]++
		}
	}

	var eliminated, standing []string
	for _, id := range b.players {
		if investors[id] == 0 {
			eliminated = append(eliminated, id)
		} else {
			standing = append(standing, id)
		}
	}
	if len(eliminated) != 1 || len(standing) == 0 {
		return "", false
	}
	return standing[0], true
}
