package response_models

import "gorm.io/datatypes"

type SubscriptionResponse struct {
	ID               string         `json:"id"`
	ProductID        string         `json:"product_id"`
	ProductName      string         `json:"product_name,omitempty"`
	Status           string         `json:"status"`
	StartDate        string         `json:"start_date"` // YYYY-MM-DD
	EndDate          string         `json:"end_date"`   // YYYY-MM-DD
	TotalPrice       int64          `json:"total_price"`
	PaymentMethod    string         `json:"payment_method"`
	PaymentStatus    string         `json:"payment_status"`
	PausedDays       int            `json:"paused_days"`
	PausedDeliveries datatypes.JSON `json:"paused_deliveries,omitempty"`
	AdminMessage     string         `json:"admin_message,omitempty"`
}

type PauseRescheduleResponse struct {
	PausedCount        int      `json:"paused_count"`
	PausedDays         int      `json:"paused_days"`
	RemainingPauseDays int      `json:"remaining_pause_days"`
	NewEndDate         string   `json:"new_end_date"`
	RescheduledDates   []string `json:"rescheduled_dates"`
}
