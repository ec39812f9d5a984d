package employee

import (
	"time"

	"github.com/google/uuid"
)

// CreatedEvent is published after a record lands in the registry.
type CreatedEvent struct {
	RecordID  uuid.UUID
	Code      string
	Kind      Kind
	Timestamp time.Time
}

func NewCreatedEvent(rec Record) *CreatedEvent {
	return &CreatedEvent{
		RecordID:  rec.RecordID(),
		Code:      rec.Code(),
		Kind:      rec.Kind(),
		Timestamp: time.Now(),
	}
}
