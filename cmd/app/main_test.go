package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitbox/internal/api/controllers"
	"fruitbox/internal/jobs"
	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/pkg/utils"
)

type stubAccountService struct{}

func (stubAccountService) CreateAccount(context.Context, request_models.SignUpRequest) error {
	return nil
}

func (stubAccountService) Login(context.Context, request_models.LoginRequest) (*response_models.LoginResponse, error) {
	return &response_models.LoginResponse{}, nil
}

func (stubAccountService) GetUserInfo(context.Context, uuid.UUID) (*response_models.UserInfoResponse, error) {
	return &response_models.UserInfoResponse{}, nil
}

func (stubAccountService) UpsertUserInfo(context.Context, uuid.UUID, request_models.UpsertUserInfoRequest) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) ListProducts(context.Context) ([]response_models.ProductResponse, error) {
	return nil, nil
}

func (stubCatalogService) GetProductById(context.Context, string) (response_models.ProductResponse, error) {
	return response_models.ProductResponse{}, nil
}

type stubSubscriptionService struct{}

func (stubSubscriptionService) Create(context.Context, uuid.UUID, request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	return &response_models.SubscriptionResponse{}, nil
}

func (stubSubscriptionService) ListMine(context.Context, uuid.UUID) ([]response_models.SubscriptionResponse, error) {
	return nil, nil
}

func (stubSubscriptionService) ListAll(context.Context, string) ([]response_models.SubscriptionResponse, error) {
	return nil, nil
}

func (stubSubscriptionService) UpdateStatus(context.Context, request_models.UpdateSubscriptionStatusRequest) error {
	return nil
}

type stubScheduleService struct {
	statusUpdates int
}

func (s *stubScheduleService) ScheduleAllForSubscription(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

func (s *stubScheduleService) PauseAndReschedule(context.Context, uuid.UUID, uuid.UUID, request_models.PauseRescheduleRequest) (*response_models.PauseRescheduleResponse, error) {
	return &response_models.PauseRescheduleResponse{}, nil
}

func (s *stubScheduleService) AdminCancelDay(context.Context, uuid.UUID, request_models.AdminLeaveRequest) (*response_models.AdminCancelResponse, error) {
	return &response_models.AdminCancelResponse{}, nil
}

func (s *stubScheduleService) UpdateDeliveryStatus(context.Context, request_models.UpdateDeliveryStatusRequest) (*response_models.StatusUpdateResponse, error) {
	s.statusUpdates++
	return &response_models.StatusUpdateResponse{}, nil
}

func (s *stubScheduleService) ListAccountDeliveries(context.Context, uuid.UUID) ([]response_models.DeliveryResponse, error) {
	return nil, nil
}

type stubVerificationService struct{}

func (stubVerificationService) Submit(context.Context, uuid.UUID, request_models.SubmitVerificationRequest) (*response_models.VerificationResponse, error) {
	return &response_models.VerificationResponse{}, nil
}

func (stubVerificationService) Decide(context.Context, request_models.DecideVerificationRequest) error {
	return nil
}

func (stubVerificationService) ListMine(context.Context, uuid.UUID) ([]response_models.VerificationResponse, error) {
	return nil, nil
}

func (stubVerificationService) ListPending(context.Context) ([]response_models.VerificationResponse, error) {
	return nil, nil
}

type stubDeliveryBoyService struct{}

func (stubDeliveryBoyService) Register(context.Context, request_models.DeliveryBoyRegisterRequest) error {
	return nil
}

func (stubDeliveryBoyService) Login(context.Context, request_models.DeliveryBoyLoginRequest) (*response_models.LoginResponse, error) {
	return &response_models.LoginResponse{}, nil
}

func (stubDeliveryBoyService) UpdateProfile(context.Context, uuid.UUID, request_models.DeliveryBoyProfileRequest) error {
	return nil
}

func (stubDeliveryBoyService) TodayDeliveries(context.Context, uuid.UUID) ([]response_models.DeliveryResponse, error) {
	return nil, nil
}

type noopSubscriptionStore struct{}

func (noopSubscriptionStore) ListActiveEndedBefore(context.Context, time.Time) ([]db_models.Subscription, error) {
	return nil, nil
}

func (noopSubscriptionStore) SetStatus(context.Context, uuid.UUID, db_models.SubscriptionStatus, *db_models.PaymentStatus) error {
	return nil
}

type noopDeliveryStore struct{}

func (noopDeliveryStore) DeleteAfter(context.Context, uuid.UUID, time.Time) (int64, error) {
	return 0, nil
}

func (noopDeliveryStore) CountUndeliveredFrom(context.Context, uuid.UUID, time.Time) (int64, error) {
	return 0, nil
}

func newTestRouter(schedule *stubScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	sweepJobs := jobs.NewJobs(noopSubscriptionStore{}, noopDeliveryStore{})

	RegisterRoutes(r,
		controllers.NewAccountController(stubAccountService{}),
		controllers.NewCatalogController(stubCatalogService{}),
		controllers.NewSubscriptionController(stubSubscriptionService{}, schedule),
		controllers.NewDeliveryController(schedule, sweepJobs),
		controllers.NewVerificationController(stubVerificationService{}),
		controllers.NewDeliveryBoyController(stubDeliveryBoyService{}))

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, role, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := utils.CreateToken(uuid.New(), role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeliveryStatusRoute_RoleGuard(t *testing.T) {
	body := `{"deliveryId":"` + uuid.NewString() + `","status":"delivered"}`

	t.Run("customer is rejected", func(t *testing.T) {
		schedule := &stubScheduleService{}
		r := newTestRouter(schedule)

		w := doRequest(t, r, http.MethodPut, "/api/deliveries/status", utils.RoleUser, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, schedule.statusUpdates)
	})

	t.Run("delivery boy is admitted", func(t *testing.T) {
		schedule := &stubScheduleService{}
		r := newTestRouter(schedule)

		w := doRequest(t, r, http.MethodPut, "/api/deliveries/status", utils.RoleDeliveryBoy, body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, schedule.statusUpdates)
	})

	t.Run("admin is admitted", func(t *testing.T) {
		schedule := &stubScheduleService{}
		r := newTestRouter(schedule)

		w := doRequest(t, r, http.MethodPut, "/api/deliveries/status", utils.RoleAdmin, body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, schedule.statusUpdates)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		schedule := &stubScheduleService{}
		r := newTestRouter(schedule)

		w := doRequest(t, r, http.MethodPut, "/api/deliveries/status", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, schedule.statusUpdates)
	})
}

func TestAdminRoutes_RejectOtherRoles(t *testing.T) {
	for _, tc := range []struct {
		method, path, role string
	}{
		{http.MethodPost, "/api/deliveries/admin-leave", utils.RoleUser},
		{http.MethodPost, "/api/admin/run-sweep", utils.RoleDeliveryBoy},
		{http.MethodGet, "/api/admin/subscriptions", utils.RoleUser},
		{http.MethodPut, "/api/subscriptions/update-status", utils.RoleDeliveryBoy},
	} {
		schedule := &stubScheduleService{}
		r := newTestRouter(schedule)

		w := doRequest(t, r, tc.method, tc.path, tc.role, "{}")
		assert.Equalf(t, http.StatusForbidden, w.Code, "%s %s as %s", tc.method, tc.path, tc.role)
	}
}
