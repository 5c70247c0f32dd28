package internal

import (
	"math"
	"math/rand/v2"
	"time"
)

// PollBackoffConfig parameterizes the exponential-with-jitter delay a
// Worker inserts between poll cycles after consecutive Acquire errors.
type PollBackoffConfig struct {
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

// PollBackoff computes the poll delay to apply after a run of
// consecutive Acquire failures. Unlike a retry budget, it never gives
// up: a Worker's poll loop has nothing to fail into, so once the
// computed delay reaches MaxInterval it just holds there and keeps
// polling at that cadence for as long as errors persist.
type PollBackoff struct {
	PollBackoffConfig
}

// Next returns the delay to sleep before the Worker's next poll cycle,
// given misses consecutive Acquire failures (1-indexed). misses == 0
// returns 0: no backoff in effect.
func (b *PollBackoff) Next(misses uint32) time.Duration {
	if misses == 0 {
		return 0
	}
	exp := float64(b.InitialInterval) * math.Pow(b.Multiplier, float64(misses-1))
	if exp > float64(b.MaxInterval) {
		exp = float64(b.MaxInterval)
	}
	if b.RandomizationFactor > 0 {
		delta := b.RandomizationFactor * exp
		exp = (exp - delta) + rand.Float64()*(2*delta)
	}
	return time.Duration(exp)
}
