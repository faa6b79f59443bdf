package request_models

type UpdateDeliveryStatusRequest struct {
	DeliveryID string `json:"deliveryId" binding:"required,uuid"`
	Status     string `json:"status" binding:"required,oneof=pending delivered missed cancelled"`
}

// AdminLeaveRequest cancels every delivery on a date and compensates active
// subscriptions with one extra day.
type AdminLeaveRequest struct {
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Message string `json:"message" binding:"required,min=3"`
}
