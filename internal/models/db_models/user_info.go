package db_models

import "github.com/google/uuid"

type DeliverySlot string

const (
	SlotMorning DeliverySlot = "morning"
	SlotEvening DeliverySlot = "evening"
)

// Address is the customer's delivery address. It is embedded both in UserInfo
// (the live copy) and in Delivery (an immutable snapshot taken at generation
// time, so later edits to UserInfo never touch existing deliveries).
type Address struct {
	Line1    string
	Area     string `gorm:"index"`
	City     string
	Pincode  string
	Landmark string
}

type UserInfo struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`
	Address   Address   `gorm:"embedded;embeddedPrefix:address_"`
	Slot      DeliverySlot

	Account Account `gorm:"foreignKey:AccountID"`
}
