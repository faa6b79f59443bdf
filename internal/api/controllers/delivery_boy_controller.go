package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruitbox/internal/models/request_models"
	"fruitbox/internal/services"
	"fruitbox/pkg/utils"
)

type DeliveryBoyController struct {
	deliveryBoyService services.DeliveryBoyServiceInterface
}

func NewDeliveryBoyController(deliveryBoyService services.DeliveryBoyServiceInterface) *DeliveryBoyController {
	return &DeliveryBoyController{
		deliveryBoyService: deliveryBoyService,
	}
}

func (d *DeliveryBoyController) Register(c *gin.Context) {
	var req request_models.DeliveryBoyRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.deliveryBoyService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Delivery boy registered successfully")
}

func (d *DeliveryBoyController) Login(c *gin.Context) {
	var req request_models.DeliveryBoyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := d.deliveryBoyService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

func (d *DeliveryBoyController) UpdateProfile(c *gin.Context) {
	boyID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.DeliveryBoyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.deliveryBoyService.UpdateProfile(c.Request.Context(), boyID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

func (d *DeliveryBoyController) TodayDeliveries(c *gin.Context) {
	boyID, ok := currentUserID(c)
	if !ok {
		return
	}

	deliveries, err := d.deliveryBoyService.TodayDeliveries(c.Request.Context(), boyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deliveries, "Today's deliveries fetched successfully")
}
