package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/pkg/utils"
)

type stubScheduleService struct {
	scheduledFor []uuid.UUID
}

func (s *stubScheduleService) ScheduleAllForSubscription(_ context.Context, subscriptionID uuid.UUID) (int, error) {
	s.scheduledFor = append(s.scheduledFor, subscriptionID)
	return 0, nil
}

func (s *stubScheduleService) PauseAndReschedule(context.Context, uuid.UUID, uuid.UUID, request_models.PauseRescheduleRequest) (*response_models.PauseRescheduleResponse, error) {
	return nil, nil
}

func (s *stubScheduleService) AdminCancelDay(context.Context, uuid.UUID, request_models.AdminLeaveRequest) (*response_models.AdminCancelResponse, error) {
	return nil, nil
}

func (s *stubScheduleService) UpdateDeliveryStatus(context.Context, request_models.UpdateDeliveryStatusRequest) (*response_models.StatusUpdateResponse, error) {
	return nil, nil
}

func (s *stubScheduleService) ListAccountDeliveries(context.Context, uuid.UUID) ([]response_models.DeliveryResponse, error) {
	return nil, nil
}

type subscriptionFixture struct {
	subs       *fakeSubscriptionRepo
	products   *fakeProductRepo
	infos      *fakeUserInfoRepo
	deliveries *fakeDeliveryRepo
	schedule   *stubScheduleService
	svc        *SubscriptionService
	accountID  uuid.UUID
	product    *db_models.Product
}

func newSubscriptionFixture() *subscriptionFixture {
	f := &subscriptionFixture{
		subs:       &fakeSubscriptionRepo{},
		products:   &fakeProductRepo{},
		infos:      &fakeUserInfoRepo{infos: map[uuid.UUID]*db_models.UserInfo{}},
		deliveries: &fakeDeliveryRepo{},
		schedule:   &stubScheduleService{},
		accountID:  uuid.New(),
	}
	f.svc = &SubscriptionService{
		subscriptionRepo: f.subs,
		productRepo:      f.products,
		userInfoRepo:     f.infos,
		deliveryRepo:     f.deliveries,
		scheduleService:  f.schedule,
	}

	f.infos.infos[f.accountID] = &db_models.UserInfo{
		AccountID: f.accountID,
		Address:   db_models.Address{Line1: "12 MG Road", Area: "Koramangala", City: "Bengaluru", Pincode: "560034"},
		Slot:      db_models.SlotMorning,
	}

	f.product = &db_models.Product{
		Name:         "Classic Fruit Box",
		PriceMinor:   9900,
		Currency:     "INR",
		DurationDays: 26,
		IsActive:     true,
	}
	f.product.ID = uuid.New()
	f.products.products = append(f.products.products, f.product)
	return f
}

func TestCreateSubscription_PricesAndEndDate(t *testing.T) {
	f := newSubscriptionFixture()

	resp, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateSubscriptionRequest{
		ProductID:     f.product.ID.String(),
		StartDate:     "2024-06-03",
		AddOnPrices:   request_models.AddOnSelection{DryFruits: 1000, Juice: 500},
		PaymentMethod: "COD",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-06-03", resp.StartDate)
	// 26 delivery days from 06-03 with four Sundays skipped lands on 07-02.
	assert.Equal(t, "2024-07-02", resp.EndDate)
	assert.EqualValues(t, 9900+1000+500, resp.TotalPrice)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, "Classic Fruit Box", resp.ProductName)

	// No deliveries exist until activation.
	assert.Empty(t, f.deliveries.rows)
	assert.Empty(t, f.schedule.scheduledFor)
}

func TestCreateSubscription_SundayStartSlides(t *testing.T) {
	f := newSubscriptionFixture()

	resp, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateSubscriptionRequest{
		ProductID:     f.product.ID.String(),
		StartDate:     "2024-06-02",
		PaymentMethod: "COD",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", resp.StartDate)
}

func TestCreateSubscription_PhonePeNeedsProof(t *testing.T) {
	f := newSubscriptionFixture()

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateSubscriptionRequest{
		ProductID:     f.product.ID.String(),
		StartDate:     "2024-06-03",
		PaymentMethod: "PhonePe",
	})
	assert.ErrorIs(t, err, utils.ErrPaymentProofRequired)

	resp, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateSubscriptionRequest{
		ProductID:     f.product.ID.String(),
		StartDate:     "2024-06-03",
		PaymentMethod: "PhonePe",
		PaymentProof:  "TXN-42871",
	})
	require.NoError(t, err)
	assert.Equal(t, string(db_models.PaymentStatusAwaiting), resp.PaymentStatus)
}

func TestCreateSubscription_UnknownProduct(t *testing.T) {
	f := newSubscriptionFixture()

	_, err := f.svc.Create(context.Background(), f.accountID, request_models.CreateSubscriptionRequest{
		ProductID:     uuid.NewString(),
		StartDate:     "2024-06-03",
		PaymentMethod: "COD",
	})
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestUpdateSubscriptionStatus_ActivationGeneratesSchedule(t *testing.T) {
	f := newSubscriptionFixture()

	sub := &db_models.Subscription{
		AccountID: f.accountID,
		ProductID: f.product.ID,
		Status:    db_models.SubStatusPending,
		StartDate: day("2024-06-03"),
		EndDate:   day("2024-07-02"),
	}
	require.NoError(t, f.subs.Insert(context.Background(), sub))

	err := f.svc.UpdateStatus(context.Background(), request_models.UpdateSubscriptionStatusRequest{
		SubscriptionID: sub.ID.String(),
		Status:         "active",
		PaymentStatus:  "paid",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, db_models.PaymentStatusPaid, sub.PaymentStatus)
	assert.Equal(t, []uuid.UUID{sub.ID}, f.schedule.scheduledFor)

	// Activating an already active subscription must not regenerate.
	require.NoError(t, f.svc.UpdateStatus(context.Background(), request_models.UpdateSubscriptionStatusRequest{
		SubscriptionID: sub.ID.String(),
		Status:         "active",
	}))
	assert.Len(t, f.schedule.scheduledFor, 1)
}

func TestUpdateSubscriptionStatus_CancellationDropsPending(t *testing.T) {
	f := newSubscriptionFixture()

	sub := &db_models.Subscription{
		AccountID: f.accountID,
		ProductID: f.product.ID,
		Status:    db_models.SubStatusActive,
		StartDate: day("2024-06-03"),
		EndDate:   day("2024-07-02"),
	}
	require.NoError(t, f.subs.Insert(context.Background(), sub))

	for _, d := range []string{"2024-06-20", "2024-06-21"} {
		require.NoError(t, f.deliveries.Insert(context.Background(), &db_models.Delivery{
			AccountID:      f.accountID,
			SubscriptionID: sub.ID,
			DeliveryDate:   day(d),
			Status:         db_models.DeliveryPending,
		}))
	}

	err := f.svc.UpdateStatus(context.Background(), request_models.UpdateSubscriptionStatusRequest{
		SubscriptionID: sub.ID.String(),
		Status:         "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.SubStatusCancelled, sub.Status)
	for _, row := range f.deliveries.forSubscription(sub.ID) {
		assert.Equal(t, db_models.DeliveryCancelled, row.Status)
	}
}
