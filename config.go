package cortex

import (
	"time"

	"github.com/fenwick/cortex/internal"
)

// Config collects the runtime options spec §6 recognizes, plus one
// cortex addition (PollBackoff) governing how aggressively the Worker
// backs off its poll cadence after a transient storage error.
//
// Configuration loading (flags, env vars, files) is explicitly out of
// scope for cortex's core; applications construct a Config directly.
type Config struct {
	// InstanceKey is this worker's target filter — only commands whose
	// Target equals InstanceKey are eligible for lease by this worker.
	// Default "default".
	InstanceKey string

	// PollInterval is how long the worker sleeps between idle polling
	// cycles when there is no transient error backoff in effect.
	// Default 5s.
	PollInterval time.Duration

	// LockTimeoutBuffer is the lease duration assigned to each acquired
	// command, and the base the heartbeat period (half of it) is
	// derived from. Default 10s.
	LockTimeoutBuffer time.Duration

	// MaxInFlight caps the number of concurrently active Executors
	// inside this worker process. Default 100.
	MaxInFlight int

	// DefaultTimeout is the per-attempt timeout applied to an enqueued
	// command when EnqueueSpec.Timeout is absent. Default 1 minute.
	DefaultTimeout time.Duration

	// DefaultRetries is the RetriesLeft applied to an enqueued command
	// when EnqueueSpec.Retries is absent. Default 3.
	DefaultRetries int32

	// TablePrefix is prepended to the storage table name. Default
	// "ORCH_".
	TablePrefix string

	// PollBackoff governs the poll-interval backoff applied after
	// consecutive transient storage errors in the Worker's polling
	// cycle, resetting once a poll succeeds. Not part of spec's base
	// recognized option set; see DESIGN.md.
	PollBackoff internal.PollBackoffConfig
}

// DefaultConfig returns a Config populated with spec §6's documented
// defaults.
func DefaultConfig() *Config {
	return &Config{
		InstanceKey:       "default",
		PollInterval:      5 * time.Second,
		LockTimeoutBuffer: 10 * time.Second,
		MaxInFlight:       100,
		DefaultTimeout:    time.Minute,
		DefaultRetries:    3,
		TablePrefix:       "ORCH_",
		PollBackoff: internal.PollBackoffConfig{
			InitialInterval:     500 * time.Millisecond,
			MaxInterval:         30 * time.Second,
			Multiplier:          2,
			RandomizationFactor: 0.2,
		},
	}
}

// ResolveConfig returns a copy of c with every zero-valued field filled
// from DefaultConfig. A nil c returns DefaultConfig directly. Storage
// backends living outside this package (sqlstore) use it to apply the
// same defaulting Worker applies internally.
func ResolveConfig(c *Config) *Config {
	return c.withDefaults()
}

func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.InstanceKey == "" {
		merged.InstanceKey = d.InstanceKey
	}
	if merged.PollInterval == 0 {
		merged.PollInterval = d.PollInterval
	}
	if merged.LockTimeoutBuffer == 0 {
		merged.LockTimeoutBuffer = d.LockTimeoutBuffer
	}
	if merged.MaxInFlight == 0 {
		merged.MaxInFlight = d.MaxInFlight
	}
	if merged.DefaultTimeout == 0 {
		merged.DefaultTimeout = d.DefaultTimeout
	}
	if merged.DefaultRetries == 0 {
		merged.DefaultRetries = d.DefaultRetries
	}
	if merged.TablePrefix == "" {
		merged.TablePrefix = d.TablePrefix
	}
	if merged.PollBackoff == (internal.PollBackoffConfig{}) {
		merged.PollBackoff = d.PollBackoff
	}
	return &merged
}
