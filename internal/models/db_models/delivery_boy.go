package db_models

import "github.com/lib/pq"

type DeliveryBoy struct {
	BaseModel
	Name            string
	Phone           string `gorm:"uniqueIndex"`
	PasswordHash    string
	ServiceAreas    pq.StringArray `gorm:"type:text[]"`
	ProfileImageURL string
}
