// meta/meta.go
package meta

// MaxMoves caps a single game. Every move advances one piece a row, so a
// game on a 7x7 board ends long before this.
const MaxMoves = 500

// DefaultGames is the number of games in a simulation run.
const DefaultGames = 100

// DefaultWorkers is the number of games simulated in parallel.
const DefaultWorkers = 4
