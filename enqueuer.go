package cortex

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fenwick/cortex/registry"
)

// EnqueueSpec describes a command to be inserted. Optional fields left
// nil are filled from a Config's defaults by the Enqueuer
// implementation that stores them (see ApplyDefaults).
//
// Id may be set by the caller to choose the command's identifier
// explicitly (spec §3: "client-chosen allowed"); if nil, a fresh uuid
// is assigned.
type EnqueueSpec struct {
	Id      *uuid.UUID
	Name    string
	Input   *string
	Target  *string
	Timeout *time.Duration
	Retries *int32
	Delay   time.Duration
	Chain   registry.Chain
}

// ApplyDefaults returns a copy of s with absent optional fields filled
// from cfg. Storage backends outside this package (sqlstore) call it
// directly; Host's local Enqueuer relies on the backing Store to do so.
func (s EnqueueSpec) ApplyDefaults(cfg *Config) EnqueueSpec {
	if s.Target == nil {
		target := cfg.InstanceKey
		s.Target = &target
	}
	if s.Timeout == nil {
		timeout := cfg.DefaultTimeout
		s.Timeout = &timeout
	}
	if s.Retries == nil {
		retries := cfg.DefaultRetries
		s.Retries = &retries
	}
	return s
}

// Enqueuer is the write-side entry point: it inserts a new command row
// in the Pending state and makes it eligible for lease once its
// ScheduledAt (now + Delay) passes.
//
// Implementations must persist the command durably before returning a
// nil error. If Enqueue returns a non-nil error, the command must not
// be considered enqueued.
type Enqueuer interface {
	Enqueue(ctx context.Context, spec EnqueueSpec) (uuid.UUID, error)
}
