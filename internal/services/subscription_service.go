package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/internal/repositories"
	"fruitbox/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Create(ctx context.Context, accountID uuid.UUID, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error)
	ListAll(ctx context.Context, statusFilter string) ([]response_models.SubscriptionResponse, error)
	UpdateStatus(ctx context.Context, req request_models.UpdateSubscriptionStatusRequest) error
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	productRepo      repositories.ProductRepository
	userInfoRepo     repositories.UserInfoRepository
	deliveryRepo     repositories.DeliveryRepository
	scheduleService  ScheduleServiceInterface
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	productRepo repositories.ProductRepository,
	userInfoRepo repositories.UserInfoRepository,
	deliveryRepo repositories.DeliveryRepository,
	scheduleService ScheduleServiceInterface,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		userInfoRepo:     userInfoRepo,
		deliveryRepo:     deliveryRepo,
		scheduleService:  scheduleService,
	}
}

// Create books a subscription in "pending" state. The end date is derived by
// counting the product's delivery days forward from the start date, Sundays
// skipped. No deliveries exist until an admin activates the subscription.
func (s *SubscriptionService) Create(ctx context.Context, accountID uuid.UUID, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	method := db_models.PaymentMethod(req.PaymentMethod)
	if method == db_models.PaymentPhonePe && req.PaymentProof == "" {
		return nil, utils.ErrPaymentProofRequired
	}

	info, err := s.userInfoRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if info == nil {
		return nil, utils.ErrUserInfoNotFound
	}

	start, err := utils.ParseDay(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	start = utils.SkipSunday(start)

	if product.DurationDays <= 0 {
		return nil, utils.ErrProductNotFound
	}
	end := utils.AddDeliveryDays(start, int(product.DurationDays))

	totalPrice := product.PriceMinor +
		req.AddOnPrices.DryFruits + req.AddOnPrices.Juice + req.AddOnPrices.Salad

	addOnJSON, err := json.Marshal(req.AddOnPrices)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	paymentStatus := db_models.PaymentStatusPending
	if method == db_models.PaymentPhonePe {
		paymentStatus = db_models.PaymentStatusAwaiting
	}

	sub := &db_models.Subscription{
		AccountID:     accountID,
		ProductID:     product.ID,
		Status:        db_models.SubStatusPending,
		StartDate:     start,
		EndDate:       end,
		AddOnPrices:   datatypes.JSON(addOnJSON),
		TotalPrice:    totalPrice,
		PaymentMethod: method,
		PaymentStatus: paymentStatus,
		PaymentProof:  req.PaymentProof,
	}

	if err := s.subscriptionRepo.Insert(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toSubscriptionResponse(*sub)
	resp.ProductName = product.Name
	return &resp, nil
}

func (s *SubscriptionService) ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subscriptionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		resp := toSubscriptionResponse(sub)
		resp.ProductName = sub.Product.Name
		out = append(out, resp)
	}
	return out, nil
}

func (s *SubscriptionService) ListAll(ctx context.Context, statusFilter string) ([]response_models.SubscriptionResponse, error) {
	var status *db_models.SubscriptionStatus
	if statusFilter != "" {
		st := db_models.SubscriptionStatus(statusFilter)
		status = &st
	}

	subs, err := s.subscriptionRepo.List(ctx, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		resp := toSubscriptionResponse(sub)
		resp.ProductName = sub.Product.Name
		out = append(out, resp)
	}
	return out, nil
}

// UpdateStatus is the admin transition. Moving into "active" back-fills the
// delivery schedule; a generation failure is logged, not rolled back, so an
// active subscription can briefly have no deliveries until a retry.
func (s *SubscriptionService) UpdateStatus(ctx context.Context, req request_models.UpdateSubscriptionStatusRequest) error {
	subscriptionID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}

	newStatus := db_models.SubscriptionStatus(req.Status)

	var paymentStatus *db_models.PaymentStatus
	if req.PaymentStatus != "" {
		ps := db_models.PaymentStatus(req.PaymentStatus)
		paymentStatus = &ps
	}

	if err := s.subscriptionRepo.SetStatus(ctx, sub.ID, newStatus, paymentStatus); err != nil {
		return utils.ErrDatabaseError
	}

	if newStatus == db_models.SubStatusActive && sub.Status != db_models.SubStatusActive {
		if _, err := s.scheduleService.ScheduleAllForSubscription(ctx, sub.ID); err != nil {
			log.Printf("delivery generation failed for subscription %s: %v", sub.ID, err)
		}
	}

	if newStatus == db_models.SubStatusCancelled {
		if err := s.deliveryRepo.CancelPendingForSubscription(ctx, sub.ID); err != nil {
			log.Printf("cancelling pending deliveries failed for subscription %s: %v", sub.ID, err)
		}
	}

	return nil
}

func toSubscriptionResponse(sub db_models.Subscription) response_models.SubscriptionResponse {
	return response_models.SubscriptionResponse{
		ID:               sub.ID.String(),
		ProductID:        sub.ProductID.String(),
		Status:           string(sub.Status),
		StartDate:        utils.FormatDay(sub.StartDate),
		EndDate:          utils.FormatDay(sub.EndDate),
		TotalPrice:       sub.TotalPrice,
		PaymentMethod:    string(sub.PaymentMethod),
		PaymentStatus:    string(sub.PaymentStatus),
		PausedDays:       sub.PausedDays,
		PausedDeliveries: sub.PausedDeliveries,
		AdminMessage:     sub.AdminMessage,
	}
}
