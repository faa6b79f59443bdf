package request_models

type DeliveryBoyRegisterRequest struct {
	Name         string   `json:"name" binding:"required,min=3,max=50"`
	Phone        string   `json:"phone" binding:"required,min=10,max=13"`
	Password     string   `json:"password" binding:"required,min=6"`
	ServiceAreas []string `json:"service_areas" binding:"required,min=1"`
}

type DeliveryBoyLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DeliveryBoyProfileRequest struct {
	Name            string   `json:"name" binding:"omitempty,min=3,max=50"`
	ServiceAreas    []string `json:"service_areas" binding:"omitempty,min=1"`
	ProfileImageURL string   `json:"profile_image_url"`
}
