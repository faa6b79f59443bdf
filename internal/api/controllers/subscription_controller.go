package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fruitbox/internal/models/request_models"
	"fruitbox/internal/services"
	"fruitbox/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
	scheduleService     services.ScheduleServiceInterface
}

func NewSubscriptionController(
	subscriptionService services.SubscriptionServiceInterface,
	scheduleService services.ScheduleServiceInterface,
) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		scheduleService:     scheduleService,
	}
}

// Create godoc
// @Summary Subscribe to a fruit box plan
// @Description Creates a pending subscription; deliveries start after admin approval
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (s *SubscriptionController) Create(c *gin.Context) {
	accountID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := s.subscriptionService.Create(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Subscription created successfully")
}

func (s *SubscriptionController) ListMine(c *gin.Context) {
	accountID, ok := currentUserID(c)
	if !ok {
		return
	}

	subs, err := s.subscriptionService.ListMine(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}

func (s *SubscriptionController) ListAll(c *gin.Context) {
	subs, err := s.subscriptionService.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}

// UpdateStatus godoc
// @Summary Admin subscription status transition
// @Description Activating a subscription back-fills its delivery schedule
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.UpdateSubscriptionStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/update-status [put]
func (s *SubscriptionController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.subscriptionService.UpdateStatus(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription status updated")
}

// PauseReschedule godoc
// @Summary Pause deliveries in a date window
// @Description Paused deliveries are appended after the current end date; 6 days lifetime cap
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription id"
// @Param request body request_models.PauseRescheduleRequest true "Pause window"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/pause-reschedule [post]
func (s *SubscriptionController) PauseReschedule(c *gin.Context) {
	accountID, ok := currentUserID(c)
	if !ok {
		return
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription id")
		return
	}

	var req request_models.PauseRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := s.scheduleService.PauseAndReschedule(c.Request.Context(), accountID, subscriptionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Deliveries paused and rescheduled")
}
