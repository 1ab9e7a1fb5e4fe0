package entities

// GuildRank is the player's progression tier. Reaching RankS wins the game.
type GuildRank string

// Guild ranks from lowest to highest
const (
	RankG GuildRank = "G"
	RankF GuildRank = "F"
	RankE GuildRank = "E"
	RankD GuildRank = "D"
	RankC GuildRank = "C"
	RankB GuildRank = "B"
	RankA GuildRank = "A"
	RankS GuildRank = "S"
)

// Rank bounds
const (
	InitialRank = RankG
	MaxRank     = RankS
)

var rankLadder = []GuildRank{RankG, RankF, RankE, RankD, RankC, RankB, RankA, RankS}

func (r GuildRank) String() string {
	return string(r)
}

// Index returns the position of r on the ladder, or -1 if unknown
func (r GuildRank) Index() int {
	for i, rank := range rankLadder {
		if rank == r {
			return i
		}
	}
	return -1
}

// IsValid reports whether r is on the ladder
func (r GuildRank) IsValid() bool {
	return r.Index() >= 0
}

// IsMax reports whether r is the top rank
func (r GuildRank) IsMax() bool {
	return r == MaxRank
}

// Next returns the rank above r. MaxRank and unknown ranks return themselves.
func (r GuildRank) Next() GuildRank {
	i := r.Index()
	if i < 0 || i == len(rankLadder)-1 {
		return r
	}
	return rankLadder[i+1]
}
