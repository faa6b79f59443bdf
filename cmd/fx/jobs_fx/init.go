package jobs_fx

import (
	"go.uber.org/fx"

	"fruitbox/internal/jobs"
	"fruitbox/internal/repositories"
)

var Module = fx.Provide(
	provideJobs, provideScheduler)

func provideJobs(subscriptionRepo repositories.SubscriptionRepository, deliveryRepo repositories.DeliveryRepository) *jobs.Jobs {
	return jobs.NewJobs(subscriptionRepo, deliveryRepo)
}

func provideScheduler(j *jobs.Jobs) *jobs.Scheduler {
	return jobs.NewScheduler(j)
}
