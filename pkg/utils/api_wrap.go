package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	var pauseLimit *PauseLimitError
	if errors.As(err, &pauseLimit) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: pauseLimit.Error(),
			TraceID: traceID(c),
			Data:    gin.H{"remainingPauseDays": pauseLimit.Remaining},
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNothingToPause),
		errors.Is(err, ErrSundayNotAllowed),
		errors.Is(err, ErrSubscriptionInactive),
		errors.Is(err, ErrPaymentProofRequired),
		errors.Is(err, ErrVerificationPending),
		errors.Is(err, ErrUserInfoNotFound),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrPhoneAlreadyExists):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrDeliveryNotFound),
		errors.Is(err, ErrVerificationNotFound),
		errors.Is(err, RecordNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDuplicateLeaveDate),
		errors.Is(err, ErrStaleSubscription):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
