package scheduler

import "time"

// backoffCap bounds how far a repeatedly failing feed can be pushed out
const backoffCap = 24 * time.Hour

// nextFetchDelay maps a consecutive-failure count to the delay before the
// next attempt. A healthy feed waits its own polling interval; a failing one
// doubles from the process default on every failure and saturates at the cap,
// so a broken feed is de-prioritized sharply but never starved forever.
func nextFetchDelay(failures int, feedInterval, defaultInterval time.Duration) time.Duration {
	if failures <= 0 {
		return feedInterval
	}

	delay := defaultInterval
	for i := 1; i < failures; i++ {
		delay *= 2
		if delay >= backoffCap {
			return backoffCap
		}
	}
	if delay > backoffCap {
		return backoffCap
	}
	return delay
}
