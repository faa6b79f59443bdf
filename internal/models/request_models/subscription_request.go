package request_models

// AddOnSelection carries the flat prices of the chosen extras. A zero value
// means the extra was not selected.
type AddOnSelection struct {
	DryFruits int64 `json:"dry_fruits" binding:"gte=0"`
	Juice     int64 `json:"juice" binding:"gte=0"`
	Salad     int64 `json:"salad" binding:"gte=0"`
}

type CreateSubscriptionRequest struct {
	ProductID     string         `json:"product_id" binding:"required,uuid"`
	StartDate     string         `json:"start_date" binding:"required"` // YYYY-MM-DD
	AddOnPrices   AddOnSelection `json:"add_on_prices"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=COD PhonePe"`
	PaymentProof  string         `json:"payment_proof"`
}

type UpdateSubscriptionStatusRequest struct {
	SubscriptionID string `json:"subscriptionId" binding:"required,uuid"`
	Status         string `json:"status" binding:"required,oneof=pending active cancelled completed"`
	PaymentStatus  string `json:"paymentStatus" binding:"omitempty,oneof=pending paid awaiting_approval"`
}

type PauseRescheduleRequest struct {
	StartDate string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"endDate" binding:"required"`   // YYYY-MM-DD
}
