package game

// Scores returned by EvaluatePiles, from the maximizing side's perspective.
const (
	TerminalScore = 100
	ParityScore   = 10
	NimSumScore   = 1
	NeutralScore  = 0
)

// EvaluatePiles scores a configuration in three tiers: an empty board is decided, a board of
// single-stone piles is decided by parity, and anything else only reports whether the nim-sum is
// zero. isMaximizing tells whose turn it is to move on the configuration.
func EvaluatePiles(piles Piles, isMaximizing bool) int {
	if IsTerminal(piles) {
		// The side that emptied the board took the last stone
		return signed(TerminalScore, isMaximizing)
	}

	if allAtMostOne(piles) {
		if piles.Total()%2 == 1 {
			return signed(-ParityScore, isMaximizing)
		}
		return signed(ParityScore, isMaximizing)
	}

	if piles.NimSum() == 0 {
		return signed(NimSumScore, isMaximizing)
	}

	// A nonzero nim-sum is left neutral at this tier
	return NeutralScore
}

func allAtMostOne(piles Piles) bool {
	for _, c := range piles {
		if c > 1 {
			return false
		}
	}
	return true
}

// signed returns score when the maximizing side is to move and -score otherwise.
func signed(score int, isMaximizing bool) int {
	if isMaximizing {
		return score
	}
	return -score
}
