package node

import (
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxShift = 30

// Policy describes the retry schedule of remote calls: the n-th retry waits
// BaseDelay*2^n plus a random jitter in [0, Jitter).
type Policy struct {
	BaseDelay time.Duration
	Jitter    time.Duration
	// MaxAttempts bounds the number of attempts per call; zero retries forever.
	MaxAttempts uint64
}

// DefaultPolicy waits 1s, 2s, 4s, ... with up to 10ms of jitter and never gives up.
func DefaultPolicy() Policy {
	return Policy{
		BaseDelay: time.Second,
		Jitter:    10 * time.Millisecond,
	}
}

// NewBackOff returns a fresh schedule. Every call gets its own attempt counter.
func (p Policy) NewBackOff() backoff.BackOff {
	return &exponentialBackOff{policy: p}
}

type exponentialBackOff struct {
	policy  Policy
	attempt uint64
}

func (b *exponentialBackOff) NextBackOff() time.Duration {
	if b.policy.MaxAttempts > 0 && b.attempt+1 >= b.policy.MaxAttempts {
		return backoff.Stop
	}

	shift := b.attempt
	if shift > maxShift {
		shift = maxShift
	}
	b.attempt++

	delay := b.policy.BaseDelay << shift
	if b.policy.Jitter > 0 {
		delay += rand.N(b.policy.Jitter)
	}
	return delay
}

func (b *exponentialBackOff) Reset() {
	b.attempt = 0
}
