package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruitbox/internal/models/request_models"
	"fruitbox/internal/services"
	"fruitbox/pkg/utils"
)

type VerificationController struct {
	verificationService services.VerificationServiceInterface
}

func NewVerificationController(verificationService services.VerificationServiceInterface) *VerificationController {
	return &VerificationController{
		verificationService: verificationService,
	}
}

func (v *VerificationController) Submit(c *gin.Context) {
	accountID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := v.verificationService.Submit(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Address submitted for verification")
}

func (v *VerificationController) ListMine(c *gin.Context) {
	accountID, ok := currentUserID(c)
	if !ok {
		return
	}

	records, err := v.verificationService.ListMine(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Verification records fetched successfully")
}

func (v *VerificationController) Decide(c *gin.Context) {
	var req request_models.DecideVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := v.verificationService.Decide(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification decided")
}

func (v *VerificationController) ListPending(c *gin.Context) {
	records, err := v.verificationService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Pending verifications fetched successfully")
}
