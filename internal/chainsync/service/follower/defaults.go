package follower

import "time"

const (
	// defaultHistoryLimit matches the Cardano security parameter k.
	defaultHistoryLimit = 2160

	reconnectInitialDelay = 1 * time.Second
	reconnectMaxDelay     = 30 * time.Second
)
