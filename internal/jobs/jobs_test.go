package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitbox/internal/models/db_models"
	"fruitbox/pkg/utils"
)

type stubSubscriptionStore struct {
	expired   []db_models.Subscription
	completed []uuid.UUID
}

func (s *stubSubscriptionStore) ListActiveEndedBefore(context.Context, time.Time) ([]db_models.Subscription, error) {
	return s.expired, nil
}

func (s *stubSubscriptionStore) SetStatus(_ context.Context, id uuid.UUID, status db_models.SubscriptionStatus, _ *db_models.PaymentStatus) error {
	if status == db_models.SubStatusCompleted {
		s.completed = append(s.completed, id)
	}
	return nil
}

type stubDeliveryStore struct {
	remaining map[uuid.UUID]int64
	purged    map[uuid.UUID]int64
	deleted   []uuid.UUID
}

func (s *stubDeliveryStore) DeleteAfter(_ context.Context, subscriptionID uuid.UUID, _ time.Time) (int64, error) {
	s.deleted = append(s.deleted, subscriptionID)
	return s.purged[subscriptionID], nil
}

func (s *stubDeliveryStore) CountUndeliveredFrom(_ context.Context, subscriptionID uuid.UUID, _ time.Time) (int64, error) {
	return s.remaining[subscriptionID], nil
}

func expiredSub(end string) db_models.Subscription {
	d, _ := utils.ParseDay(end)
	sub := db_models.Subscription{
		Status:  db_models.SubStatusActive,
		EndDate: d,
	}
	sub.ID = uuid.New()
	return sub
}

func TestSweepExpiredSubscriptions(t *testing.T) {
	done := expiredSub("2024-06-28")
	owing := expiredSub("2024-06-29")

	subStore := &stubSubscriptionStore{expired: []db_models.Subscription{done, owing}}
	delStore := &stubDeliveryStore{
		remaining: map[uuid.UUID]int64{owing.ID: 2},
		purged:    map[uuid.UUID]int64{done.ID: 1},
	}

	j := &Jobs{
		subscriptionRepo: subStore,
		deliveryRepo:     delStore,
		now: func() time.Time {
			d, _ := utils.ParseDay("2024-07-01")
			return d.Add(30 * time.Minute)
		},
	}

	completed, err := j.SweepExpiredSubscriptions(context.Background())
	require.NoError(t, err)

	// The subscription with undelivered boxes stays active for its replacements.
	assert.Equal(t, 1, completed)
	assert.Equal(t, []uuid.UUID{done.ID}, subStore.completed)

	// Stray rows past the end date were purged for both.
	assert.ElementsMatch(t, []uuid.UUID{done.ID, owing.ID}, delStore.deleted)
}

func TestSweepExpiredSubscriptions_NothingExpired(t *testing.T) {
	j := &Jobs{
		subscriptionRepo: &stubSubscriptionStore{},
		deliveryRepo:     &stubDeliveryStore{},
		now:              time.Now,
	}

	completed, err := j.SweepExpiredSubscriptions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, completed)
}
