package response_models

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type UserInfoResponse struct {
	Line1    string `json:"line1"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
	Slot     string `json:"slot"`
}
