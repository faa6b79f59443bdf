package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fruitbox/internal/models/db_models"
	"fruitbox/pkg/utils"
)

// In-memory repository fakes. They mirror the query semantics of the gorm
// repositories closely enough for the service logic under test.

type passTxRunner struct{}

func (passTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSubscriptionRepo struct {
	subs []*db_models.Subscription
}

func (f *fakeSubscriptionRepo) Insert(_ context.Context, sub *db_models.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubscriptionRepo) find(id uuid.UUID) *db_models.Subscription {
	for _, sub := range f.subs {
		if sub.ID == id {
			return sub
		}
	}
	return nil
}

func (f *fakeSubscriptionRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Subscription, error) {
	sub := f.find(id)
	if sub == nil {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (f *fakeSubscriptionRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, sub := range f.subs {
		if sub.AccountID == accountID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) List(_ context.Context, status *db_models.SubscriptionStatus) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, sub := range f.subs {
		if status == nil || sub.Status == *status {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) ListActive(_ context.Context) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, sub := range f.subs {
		if sub.Status == db_models.SubStatusActive {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) ListActiveEndedBefore(_ context.Context, day time.Time) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, sub := range f.subs {
		if sub.Status == db_models.SubStatusActive && sub.EndDate.Before(day) {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) SetStatus(_ context.Context, id uuid.UUID, status db_models.SubscriptionStatus, paymentStatus *db_models.PaymentStatus) error {
	if sub := f.find(id); sub != nil {
		sub.Status = status
		if paymentStatus != nil {
			sub.PaymentStatus = *paymentStatus
		}
	}
	return nil
}

func (f *fakeSubscriptionRepo) ExtendForPause(_ context.Context, id uuid.UUID,
	oldEndDate time.Time, oldPausedDays int,
	newEndDate time.Time, newPausedDays int, pausedDeliveries datatypes.JSON) (bool, error) {

	sub := f.find(id)
	if sub == nil || !utils.Day(sub.EndDate).Equal(oldEndDate) || sub.PausedDays != oldPausedDays {
		return false, nil
	}
	sub.EndDate = newEndDate
	sub.PausedDays = newPausedDays
	sub.PausedDeliveries = pausedDeliveries
	return true, nil
}

func (f *fakeSubscriptionRepo) ExtendForLeave(_ context.Context, id uuid.UUID, newEndDate time.Time, adminMessage string) error {
	if sub := f.find(id); sub != nil {
		sub.EndDate = newEndDate
		sub.AdminMessage = adminMessage
	}
	return nil
}

type fakeDeliveryRepo struct {
	rows []*db_models.Delivery
}

func (f *fakeDeliveryRepo) Insert(_ context.Context, delivery *db_models.Delivery) error {
	if delivery.ID == uuid.Nil {
		delivery.ID = uuid.New()
	}
	f.rows = append(f.rows, delivery)
	return nil
}

func (f *fakeDeliveryRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Delivery, error) {
	for _, row := range f.rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDeliveryRepo) ExistsOn(_ context.Context, subscriptionID uuid.UUID, day time.Time) (bool, error) {
	for _, row := range f.rows {
		if row.SubscriptionID == subscriptionID && utils.SameDay(row.DeliveryDate, day) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDeliveryRepo) ListPendingInRange(_ context.Context, subscriptionID uuid.UUID, from, to time.Time) ([]db_models.Delivery, error) {
	var out []db_models.Delivery
	for _, row := range f.rows {
		if row.SubscriptionID == subscriptionID &&
			row.Status == db_models.DeliveryPending &&
			!row.DeliveryDate.Before(from) && !utils.Day(row.DeliveryDate).After(utils.Day(to)) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeliveryDate.Before(out[j].DeliveryDate) })
	return out, nil
}

func (f *fakeDeliveryRepo) MarkStatus(_ context.Context, id uuid.UUID, status db_models.DeliveryStatus, deliveredAt *int64) error {
	for _, row := range f.rows {
		if row.ID == id {
			row.Status = status
			if deliveredAt != nil {
				row.DeliveredAt = deliveredAt
			}
		}
	}
	return nil
}

func (f *fakeDeliveryRepo) CancelAllOn(_ context.Context, day time.Time) (int64, error) {
	var count int64
	for _, row := range f.rows {
		if row.Status == db_models.DeliveryPending && utils.SameDay(row.DeliveryDate, day) {
			row.Status = db_models.DeliveryCancelled
			count++
		}
	}
	return count, nil
}

func (f *fakeDeliveryRepo) CancelPendingForSubscription(_ context.Context, subscriptionID uuid.UUID) error {
	for _, row := range f.rows {
		if row.SubscriptionID == subscriptionID && row.Status == db_models.DeliveryPending {
			row.Status = db_models.DeliveryCancelled
		}
	}
	return nil
}

func (f *fakeDeliveryRepo) DeleteAfter(_ context.Context, subscriptionID uuid.UUID, day time.Time) (int64, error) {
	var kept []*db_models.Delivery
	var deleted int64
	for _, row := range f.rows {
		if row.SubscriptionID == subscriptionID && utils.Day(row.DeliveryDate).After(utils.Day(day)) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return deleted, nil
}

func (f *fakeDeliveryRepo) CountUndeliveredFrom(_ context.Context, subscriptionID uuid.UUID, from time.Time) (int64, error) {
	var count int64
	for _, row := range f.rows {
		if row.SubscriptionID == subscriptionID &&
			!row.DeliveryDate.Before(from) &&
			row.Status != db_models.DeliveryDelivered && row.Status != db_models.DeliveryCancelled {
			count++
		}
	}
	return count, nil
}

func (f *fakeDeliveryRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Delivery, error) {
	var out []db_models.Delivery
	for _, row := range f.rows {
		if row.AccountID == accountID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) ListPendingOnDayInAreas(_ context.Context, day time.Time, areas []string) ([]db_models.Delivery, error) {
	inAreas := func(area string) bool {
		for _, a := range areas {
			if a == area {
				return true
			}
		}
		return false
	}

	var out []db_models.Delivery
	for _, row := range f.rows {
		if row.Status == db_models.DeliveryPending && utils.SameDay(row.DeliveryDate, day) && inAreas(row.Address.Area) {
			out = append(out, *row)
		}
	}
	return out, nil
}

// forSubscription returns the fake's rows for one subscription, oldest first.
func (f *fakeDeliveryRepo) forSubscription(subscriptionID uuid.UUID) []*db_models.Delivery {
	var out []*db_models.Delivery
	for _, row := range f.rows {
		if row.SubscriptionID == subscriptionID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeliveryDate.Before(out[j].DeliveryDate) })
	return out
}

type fakeUserInfoRepo struct {
	infos map[uuid.UUID]*db_models.UserInfo
}

func (f *fakeUserInfoRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (*db_models.UserInfo, error) {
	info, ok := f.infos[accountID]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

func (f *fakeUserInfoRepo) Upsert(_ context.Context, info *db_models.UserInfo) error {
	if f.infos == nil {
		f.infos = map[uuid.UUID]*db_models.UserInfo{}
	}
	f.infos[info.AccountID] = info
	return nil
}

type fakeCancellationRepo struct {
	records []*db_models.AdminCancellationMessage
}

func (f *fakeCancellationRepo) Insert(_ context.Context, record *db_models.AdminCancellationMessage) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeCancellationRepo) ExistsForDate(_ context.Context, day time.Time) (bool, error) {
	for _, record := range f.records {
		if utils.SameDay(record.CancellationDate, day) {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products []*db_models.Product
}

func (f *fakeProductRepo) GetByID(_ context.Context, productID string) (*db_models.Product, error) {
	for _, p := range f.products {
		if p.ID.String() == productID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListActive(_ context.Context) ([]db_models.Product, error) {
	var out []db_models.Product
	for _, p := range f.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}
