package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusPending   SubscriptionStatus = "pending"
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusCompleted SubscriptionStatus = "completed"
)

type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "COD"
	PaymentPhonePe PaymentMethod = "PhonePe"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusAwaiting PaymentStatus = "awaiting_approval"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	ProductID uuid.UUID `gorm:"index"`

	Status SubscriptionStatus `gorm:"index;default:pending"`

	// Inclusive range of calendar days receiving a delivery, UTC midnight.
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	// Snapshot of the chosen extras at checkout, e.g. {"dry_fruits": 4900}.
	AddOnPrices   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	TotalPrice    int64
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus `gorm:"default:pending"`
	PaymentProof  string        // transaction reference, required for PhonePe

	// Pause bookkeeping. PausedDeliveries is an append-only audit trail of
	// {originalDate, rescheduledDate} pairs, never reconciled or removed.
	PausedDays       int            `gorm:"default:0"`
	PausedDeliveries datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	AdminMessage string

	Account Account `gorm:"foreignKey:AccountID"`
	Product Product `gorm:"foreignKey:ProductID"`
}

// PausedDelivery is one entry of Subscription.PausedDeliveries.
type PausedDelivery struct {
	OriginalDate    string `json:"originalDate"`
	RescheduledDate string `json:"rescheduledDate"`
}
