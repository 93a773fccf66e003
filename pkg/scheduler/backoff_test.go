package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextFetchDelay(t *testing.T) {
	base := 30 * time.Minute
	feedInterval := 15 * time.Minute

	tbl := []struct {
		failures int
		want     time.Duration
	}{
		{0, feedInterval},
		{1, 30 * time.Minute},
		{2, time.Hour},
		{3, 2 * time.Hour},
		{4, 4 * time.Hour},
		{5, 8 * time.Hour},
		{6, 16 * time.Hour},
		{7, 24 * time.Hour}, // 32h saturates at the cap
		{8, 24 * time.Hour},
		{100, 24 * time.Hour},
		{10000, 24 * time.Hour}, // doubling must not overflow
	}

	for _, tt := range tbl {
		assert.Equal(t, tt.want, nextFetchDelay(tt.failures, feedInterval, base), "failures=%d", tt.failures)
	}
}

func TestNextFetchDelay_Monotonic(t *testing.T) {
	base := 30 * time.Minute
	prev := nextFetchDelay(1, base, base)
	for f := 2; f <= 64; f++ {
		cur := nextFetchDelay(f, base, base)
		assert.GreaterOrEqual(t, cur, prev, "delay shrank at failures=%d", f)
		prev = cur
	}
}

func TestNextFetchDelay_ZeroFailuresUsesFeedInterval(t *testing.T) {
	assert.Equal(t, time.Hour, nextFetchDelay(0, time.Hour, 30*time.Minute))
	assert.Equal(t, 5*time.Minute, nextFetchDelay(0, 5*time.Minute, 30*time.Minute))
}
