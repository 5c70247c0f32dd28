package envelope

import (
	"github.com/google/uuid"
)

// Envelope carries the caller-supplied identity of a command: who it is,
// where it routes, and what opaque input it carries.
//
// Envelope does not track delivery state, scheduling, or retry
// information. Those concerns belong to command.Command, which embeds
// Envelope and augments it with lifecycle fields.
//
// Id is generated by NewEnvelope but may be overridden by the caller
// before the command is enqueued.
//
// Input is an opaque text blob. Its contents are never inspected by the
// core; serialization and deserialization are the caller's concern.
type Envelope struct {
	Id     uuid.UUID
	Name   string
	Target string
	Input  *string
}

// NewEnvelope creates a new Envelope with a randomly generated id.
func NewEnvelope(name, target string, input *string) *Envelope {
	return &Envelope{
		Id:     uuid.New(),
		Name:   name,
		Target: target,
		Input:  input,
	}
}
