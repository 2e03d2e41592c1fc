// meta/meta.go
package meta

// DEFAULT_PILES is the starting configuration of a game.
var DEFAULT_PILES = []int{1, 3, 5, 7}

// DEFAULT_DEPTH is the search depth of the AI player.
const DEFAULT_DEPTH = 10

// MAX_MOVES bounds a single game. Every move removes a stone, so it only matters for huge piles.
const MAX_MOVES = 10000

// NUM_GAMES defines the number of games per experiment match up.
const NUM_GAMES = 30
