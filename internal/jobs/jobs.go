package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"fruitbox/internal/models/db_models"
	"fruitbox/pkg/utils"
)

// SubscriptionStore defines the subscription operations needed by the jobs.
type SubscriptionStore interface {
	ListActiveEndedBefore(ctx context.Context, day time.Time) ([]db_models.Subscription, error)
	SetStatus(ctx context.Context, subscriptionID uuid.UUID, status db_models.SubscriptionStatus, paymentStatus *db_models.PaymentStatus) error
}

// DeliveryStore defines the delivery operations needed by the jobs.
type DeliveryStore interface {
	DeleteAfter(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (int64, error)
	CountUndeliveredFrom(ctx context.Context, subscriptionID uuid.UUID, from time.Time) (int64, error)
}

// Jobs contains the logic for all scheduled tasks. The clock is injectable so
// the sweep can be driven from tests and from the admin trigger endpoint.
type Jobs struct {
	subscriptionRepo SubscriptionStore
	deliveryRepo     DeliveryStore
	now              func() time.Time
}

func NewJobs(subscriptionRepo SubscriptionStore, deliveryRepo DeliveryStore) *Jobs {
	return &Jobs{
		subscriptionRepo: subscriptionRepo,
		deliveryRepo:     deliveryRepo,
		now:              time.Now,
	}
}

// SweepExpiredSubscriptions completes every active subscription whose end
// date has passed and removes its leftover future deliveries. Returns how
// many subscriptions were completed.
func (j *Jobs) SweepExpiredSubscriptions(ctx context.Context) (int, error) {
	today := utils.Day(j.now())

	subs, err := j.subscriptionRepo.ListActiveEndedBefore(ctx, today)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, sub := range subs {
		purged, err := j.deliveryRepo.DeleteAfter(ctx, sub.ID, utils.Day(sub.EndDate))
		if err != nil {
			log.Printf("sweep: purging deliveries for subscription %s failed: %v", sub.ID, err)
			continue
		}

		remaining, err := j.deliveryRepo.CountUndeliveredFrom(ctx, sub.ID, today)
		if err != nil {
			log.Printf("sweep: counting deliveries for subscription %s failed: %v", sub.ID, err)
			continue
		}
		if remaining > 0 {
			continue
		}

		if err := j.subscriptionRepo.SetStatus(ctx, sub.ID, db_models.SubStatusCompleted, nil); err != nil {
			log.Printf("sweep: completing subscription %s failed: %v", sub.ID, err)
			continue
		}

		completed++
		if purged > 0 {
			log.Printf("sweep: subscription %s completed, %d stray deliveries purged", sub.ID, purged)
		}
	}

	return completed, nil
}

// RunSweep is the cron entrypoint.
func (j *Jobs) RunSweep() {
	log.Println("starting subscription sweep job")

	completed, err := j.SweepExpiredSubscriptions(context.Background())
	if err != nil {
		log.Printf("subscription sweep failed: %v", err)
		return
	}

	log.Printf("subscription sweep finished, %d subscriptions completed", completed)
}
