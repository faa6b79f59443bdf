package response_models

type DeliveryResponse struct {
	ID             string `json:"id"`
	SubscriptionID string `json:"subscription_id"`
	DeliveryDate   string `json:"delivery_date"` // YYYY-MM-DD
	Slot           string `json:"slot"`
	Status         string `json:"status"`
	IsRescheduled  bool   `json:"is_rescheduled"`
	Line1          string `json:"line1"`
	Area           string `json:"area"`
	City           string `json:"city"`
	Pincode        string `json:"pincode"`
	Landmark       string `json:"landmark,omitempty"`
}

type StatusUpdateResponse struct {
	DeliveryID            string `json:"delivery_id"`
	Status                string `json:"status"`
	SubscriptionCompleted bool   `json:"subscription_completed"`
	PurgedCount           int64  `json:"purged_count"`
}

type AdminCancelResponse struct {
	CancellationRecordID  string `json:"cancellation_record_id"`
	CancelledDeliveries   int64  `json:"cancelled_deliveries"`
	SubscriptionsAffected int    `json:"subscriptions_affected"`
}
