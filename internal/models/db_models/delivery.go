package db_models

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
	// DeliveryMissed also marks an original delivery that was paused and
	// rescheduled to a later date.
	DeliveryMissed    DeliveryStatus = "missed"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

type Delivery struct {
	BaseModel
	AccountID      uuid.UUID `gorm:"index"`
	SubscriptionID uuid.UUID `gorm:"not null;index"`
	ProductID      uuid.UUID

	// Address snapshot taken from UserInfo at generation time.
	Address Address `gorm:"embedded;embeddedPrefix:address_"`
	Slot    DeliverySlot

	// Day-granularity key, UTC midnight. Uniqueness of
	// (SubscriptionID, DeliveryDate) is enforced by existence checks.
	DeliveryDate time.Time `gorm:"index"`

	Status             DeliveryStatus `gorm:"index;default:pending"`
	IsRescheduled      bool           `gorm:"default:false"`
	IsFestivalOrSunday bool           `gorm:"default:false"`
	DeliveredAt        *int64

	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
	Product      Product      `gorm:"foreignKey:ProductID"`
}
