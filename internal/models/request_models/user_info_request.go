package request_models

type UpsertUserInfoRequest struct {
	Line1    string `json:"line1" binding:"required"`
	Area     string `json:"area" binding:"required"`
	City     string `json:"city" binding:"required"`
	Pincode  string `json:"pincode" binding:"required,min=6,max=6"`
	Landmark string `json:"landmark"`
	Slot     string `json:"slot" binding:"required,oneof=morning evening"`
}
