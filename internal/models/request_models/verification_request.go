package request_models

type SubmitVerificationRequest struct {
	Line1    string `json:"line1" binding:"required"`
	Area     string `json:"area" binding:"required"`
	City     string `json:"city" binding:"required"`
	Pincode  string `json:"pincode" binding:"required,min=6,max=6"`
	Landmark string `json:"landmark"`
}

type DecideVerificationRequest struct {
	VerificationID string `json:"verificationId" binding:"required,uuid"`
	Status         string `json:"status" binding:"required,oneof=approved not_deliverable"`
	DeliveryCharge int64  `json:"deliveryCharge" binding:"gte=0"`
}
