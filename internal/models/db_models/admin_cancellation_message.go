package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AdminCancellationMessage is the audit record of one admin mass-cancellation.
// Exactly one may exist per calendar date; it is never mutated afterwards.
type AdminCancellationMessage struct {
	BaseModel
	CancellationDate         time.Time `gorm:"uniqueIndex"`
	Message                  string
	AffectedSubscriptionIDs  pq.StringArray `gorm:"type:text[]"`
	CancelledDeliveriesCount int64
	CreatedBy                uuid.UUID
}
