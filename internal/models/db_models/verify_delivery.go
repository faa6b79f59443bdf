package db_models

import "github.com/google/uuid"

type VerifyDeliveryStatus string

const (
	VerifyPending        VerifyDeliveryStatus = "pending"
	VerifyApproved       VerifyDeliveryStatus = "approved"
	VerifyNotDeliverable VerifyDeliveryStatus = "not_deliverable"
)

// VerifyDelivery is one address-verification request. A user may accumulate
// several historical records, but only one may be pending at a time.
type VerifyDelivery struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Address   Address   `gorm:"embedded;embeddedPrefix:address_"`

	Status         VerifyDeliveryStatus `gorm:"index;default:pending"`
	DeliveryCharge int64

	Account Account `gorm:"foreignKey:AccountID"`
}
