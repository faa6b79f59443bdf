package response_models

type VerificationResponse struct {
	ID             string `json:"id"`
	Line1          string `json:"line1"`
	Area           string `json:"area"`
	City           string `json:"city"`
	Pincode        string `json:"pincode"`
	Landmark       string `json:"landmark,omitempty"`
	Status         string `json:"status"`
	DeliveryCharge int64  `json:"delivery_charge"`
}
