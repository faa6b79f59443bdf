package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruitbox/internal/jobs"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/services"
	"fruitbox/pkg/utils"
)

type DeliveryController struct {
	scheduleService services.ScheduleServiceInterface
	sweepJobs       *jobs.Jobs
}

func NewDeliveryController(scheduleService services.ScheduleServiceInterface, sweepJobs *jobs.Jobs) *DeliveryController {
	return &DeliveryController{
		scheduleService: scheduleService,
		sweepJobs:       sweepJobs,
	}
}

func (d *DeliveryController) ListMine(c *gin.Context) {
	accountID, ok := currentUserID(c)
	if !ok {
		return
	}

	deliveries, err := d.scheduleService.ListAccountDeliveries(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deliveries, "Deliveries fetched successfully")
}

// UpdateStatus marks a delivery delivered/missed and may complete the
// owning subscription.
func (d *DeliveryController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := d.scheduleService.UpdateDeliveryStatus(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Delivery status updated")
}

// AdminLeave cancels all deliveries on a date and compensates active
// subscriptions with one extra day.
func (d *DeliveryController) AdminLeave(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AdminLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := d.scheduleService.AdminCancelDay(c.Request.Context(), adminID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Deliveries cancelled and subscriptions compensated")
}

// RunSweep lets an external orchestrator trigger the completion sweep on
// demand, outside the cron schedule.
func (d *DeliveryController) RunSweep(c *gin.Context) {
	completed, err := d.sweepJobs.SweepExpiredSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	utils.RespondSuccess(c, gin.H{"completed_subscriptions": completed}, "Sweep finished")
}
