package response_models

import "gorm.io/datatypes"

type ProductResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  *string        `json:"description"`
	ImageURL     string         `json:"image_url"`
	Price        int64          `json:"price"`
	Currency     string         `json:"currency"`
	DurationDays int32          `json:"duration_days"`
	AddOns       datatypes.JSON `json:"add_ons"`
}
