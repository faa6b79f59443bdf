package db_models

import (
	"gorm.io/datatypes"
)

type Product struct {
	BaseModel
	Name         string
	Description  *string
	ImageURL     string
	PriceMinor   int64  // 14900 = ₹149.00
	Currency     string `gorm:"size:3;default:INR"`
	DurationDays int32  // number of deliveries per term, Sundays excluded
	IsActive     bool   `gorm:"default:true"`
	// Catalog of the optional extras with their flat prices, e.g.
	// {"dry_fruits": 4900, "juice": 3500, "salad": 2900}
	AddOns datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
