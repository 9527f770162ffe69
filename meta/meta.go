// meta/meta.go
package meta

// ROUNDS defines the number of rounds played when none is given.
const ROUNDS = 1

// WORKERS defines the number of goroutines playing rounds; 0 uses one per CPU.
const WORKERS = 0

// SEED defines the seed of the first round.
const SEED = 0

// GAME_TYPE defines the default variant.
const GAME_TYPE = "vanilla"

// LOSS_POLICY defines how a round lost to strikes is scored.
const LOSS_POLICY = "zero"

// VERBOSITY defines the default amount of output.
const VERBOSITY = "scores"

// LOG_FILE receives all output at the log verbosity.
const LOG_FILE = "games.log"
