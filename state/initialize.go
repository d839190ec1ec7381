package state

import "time"

// newLocalEnv creates a new LocalEnv instance with default values, logger is
// left unset until configuration is loaded.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Root:  ".",
	}
}
