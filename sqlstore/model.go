package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fenwick/cortex/command"
	"github.com/fenwick/cortex/envelope"
)

// commandModel is the bun-mapped row shape for spec §6's bit-exact
// "commands" table. Its bun.BaseModel table tag is a fallback; the
// actual table name used at query time is always overridden to
// "<prefix>commands" via ModelTableExpr on every query, using the name
// NewStore derives in store.go.
type commandModel struct {
	bun.BaseModel `bun:"table:commands"`

	Id     uuid.UUID `bun:"id,pk,type:uuid"`
	Target string    `bun:"target,notnull"`
	Name   string    `bun:"name,notnull"`

	Input  *string `bun:"input,nullzero"`
	Output *string `bun:"output,nullzero"`

	ScheduledAt time.Time `bun:"scheduled_at,notnull"`
	Timeout     duration  `bun:"timeout,notnull"`
	RetriesLeft int32     `bun:"retries_left,notnull"`

	IsRunning    bool       `bun:"is_running,notnull,default:false"`
	RunningAt    *time.Time `bun:"running_at,nullzero"`
	RunExpiresAt *time.Time `bun:"run_expires_at,nullzero"`

	IsCompleted bool       `bun:"is_completed,notnull,default:false"`
	CompletedAt *time.Time `bun:"completed_at,nullzero"`

	IsCanceled bool       `bun:"is_canceled,notnull,default:false"`
	CanceledAt *time.Time `bun:"canceled_at,nullzero"`

	IsFailed bool       `bun:"is_failed,notnull,default:false"`
	FailedAt *time.Time `bun:"failed_at,nullzero"`
}

func (m *commandModel) toCommand() *command.Command {
	return &command.Command{
		Envelope: envelope.Envelope{
			Id:     m.Id,
			Name:   m.Name,
			Target: m.Target,
			Input:  m.Input,
		},
		Output:       m.Output,
		ScheduledAt:  m.ScheduledAt,
		Timeout:      time.Duration(m.Timeout),
		RetriesLeft:  m.RetriesLeft,
		IsRunning:    m.IsRunning,
		RunningAt:    m.RunningAt,
		RunExpiresAt: m.RunExpiresAt,
		IsCompleted:  m.IsCompleted,
		CompletedAt:  m.CompletedAt,
		IsCanceled:   m.IsCanceled,
		CanceledAt:   m.CanceledAt,
		IsFailed:     m.IsFailed,
		FailedAt:     m.FailedAt,
	}
}

func fromEnqueueSpec(id uuid.UUID, name, target string, input *string, scheduledAt time.Time, timeout time.Duration, retries int32) *commandModel {
	return &commandModel{
		Id:          id,
		Target:      target,
		Name:        name,
		Input:       input,
		ScheduledAt: scheduledAt,
		Timeout:     duration(timeout),
		RetriesLeft: retries,
	}
}
