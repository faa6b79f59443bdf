package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fruitbox/internal/infra"
	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/internal/repositories"
	"fruitbox/pkg/utils"
)

type ScheduleServiceInterface interface {
	ScheduleAllForSubscription(ctx context.Context, subscriptionID uuid.UUID) (int, error)
	PauseAndReschedule(ctx context.Context, accountID, subscriptionID uuid.UUID, req request_models.PauseRescheduleRequest) (*response_models.PauseRescheduleResponse, error)
	AdminCancelDay(ctx context.Context, adminID uuid.UUID, req request_models.AdminLeaveRequest) (*response_models.AdminCancelResponse, error)
	UpdateDeliveryStatus(ctx context.Context, req request_models.UpdateDeliveryStatusRequest) (*response_models.StatusUpdateResponse, error)
	ListAccountDeliveries(ctx context.Context, accountID uuid.UUID) ([]response_models.DeliveryResponse, error)
}

type ScheduleService struct {
	subscriptionRepo repositories.SubscriptionRepository
	deliveryRepo     repositories.DeliveryRepository
	userInfoRepo     repositories.UserInfoRepository
	cancellationRepo repositories.CancellationRepository
	tx               infra.TxRunner
	now              func() time.Time
}

func NewScheduleService(
	subscriptionRepo repositories.SubscriptionRepository,
	deliveryRepo repositories.DeliveryRepository,
	userInfoRepo repositories.UserInfoRepository,
	cancellationRepo repositories.CancellationRepository,
	tx infra.TxRunner,
) ScheduleServiceInterface {
	return &ScheduleService{
		subscriptionRepo: subscriptionRepo,
		deliveryRepo:     deliveryRepo,
		userInfoRepo:     userInfoRepo,
		cancellationRepo: cancellationRepo,
		tx:               tx,
		now:              time.Now,
	}
}

// ScheduleAllForSubscription back-fills one pending delivery for every
// non-Sunday day in the subscription's [StartDate, EndDate] range. Days that
// already have a delivery are left alone, so reruns are safe. The address and
// slot are snapshotted from UserInfo at generation time.
func (s *ScheduleService) ScheduleAllForSubscription(ctx context.Context, subscriptionID uuid.UUID) (int, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if sub == nil {
		return 0, utils.ErrSubscriptionNotFound
	}
	if sub.Status == db_models.SubStatusCancelled {
		return 0, utils.ErrSubscriptionInactive
	}

	info, err := s.userInfoRepo.GetByAccountID(ctx, sub.AccountID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if info == nil {
		return 0, utils.ErrUserInfoNotFound
	}

	created := 0
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, day := range utils.DeliveryDays(sub.StartDate, sub.EndDate) {
			exists, err := s.deliveryRepo.ExistsOn(ctx, sub.ID, day)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			delivery := &db_models.Delivery{
				AccountID:      sub.AccountID,
				SubscriptionID: sub.ID,
				ProductID:      sub.ProductID,
				Address:        info.Address,
				Slot:           info.Slot,
				DeliveryDate:   day,
				Status:         db_models.DeliveryPending,
			}
			if err := s.deliveryRepo.Insert(ctx, delivery); err != nil {
				return err
			}
			created++
		}
		return nil
	})

	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	return created, nil
}

// PauseAndReschedule cancels the pending deliveries inside the requested
// window and appends one replacement per paused day after the current end
// date, Sundays skipped. The new end date is the date of the last replacement
// created, which keeps it reachable from the start date without Sundays.
func (s *ScheduleService) PauseAndReschedule(ctx context.Context, accountID, subscriptionID uuid.UUID, req request_models.PauseRescheduleRequest) (*response_models.PauseRescheduleResponse, error) {
	from, err := utils.ParseDay(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	to, err := utils.ParseDay(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !from.Before(to) {
		return nil, utils.ErrInvalidInput
	}
	if from.Before(utils.Day(s.now())) {
		return nil, utils.ErrInvalidInput
	}

	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	if sub.AccountID != accountID {
		return nil, utils.ErrNotOwner
	}
	if sub.Status != db_models.SubStatusActive {
		return nil, utils.ErrSubscriptionInactive
	}

	info, err := s.userInfoRepo.GetByAccountID(ctx, sub.AccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if info == nil {
		return nil, utils.ErrUserInfoNotFound
	}

	var resp *response_models.PauseRescheduleResponse
	txErr := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		rows, err := s.deliveryRepo.ListPendingInRange(ctx, sub.ID, from, to)
		if err != nil {
			return err
		}

		toPause := rows[:0]
		for _, row := range rows {
			if !utils.IsSunday(row.DeliveryDate) {
				toPause = append(toPause, row)
			}
		}

		daysToPause := len(toPause)
		if daysToPause == 0 {
			return utils.ErrNothingToPause
		}
		if sub.PausedDays+daysToPause > utils.MaxPauseDays {
			return &utils.PauseLimitError{
				Requested: daysToPause,
				Remaining: utils.MaxPauseDays - sub.PausedDays,
			}
		}

		var audit []db_models.PausedDelivery
		if len(sub.PausedDeliveries) > 0 {
			if err := json.Unmarshal(sub.PausedDeliveries, &audit); err != nil {
				return err
			}
		}

		cursor := utils.Day(sub.EndDate)
		rescheduled := make([]string, 0, daysToPause)
		for _, row := range toPause {
			cursor = utils.NextDeliveryDay(cursor)

			replacement := &db_models.Delivery{
				AccountID:      sub.AccountID,
				SubscriptionID: sub.ID,
				ProductID:      sub.ProductID,
				Address:        info.Address,
				Slot:           info.Slot,
				DeliveryDate:   cursor,
				Status:         db_models.DeliveryPending,
				IsRescheduled:  true,
			}
			if err := s.deliveryRepo.Insert(ctx, replacement); err != nil {
				return err
			}
			if err := s.deliveryRepo.MarkStatus(ctx, row.ID, db_models.DeliveryMissed, nil); err != nil {
				return err
			}

			audit = append(audit, db_models.PausedDelivery{
				OriginalDate:    utils.FormatDay(row.DeliveryDate),
				RescheduledDate: utils.FormatDay(cursor),
			})
			rescheduled = append(rescheduled, utils.FormatDay(cursor))
		}

		newEndDate := cursor
		newPausedDays := sub.PausedDays + daysToPause

		auditJSON, err := json.Marshal(audit)
		if err != nil {
			return err
		}

		ok, err := s.subscriptionRepo.ExtendForPause(ctx, sub.ID,
			utils.Day(sub.EndDate), sub.PausedDays,
			newEndDate, newPausedDays, datatypes.JSON(auditJSON))
		if err != nil {
			return err
		}
		if !ok {
			return utils.ErrStaleSubscription
		}

		resp = &response_models.PauseRescheduleResponse{
			PausedCount:        daysToPause,
			PausedDays:         newPausedDays,
			RemainingPauseDays: utils.MaxPauseDays - newPausedDays,
			NewEndDate:         utils.FormatDay(newEndDate),
			RescheduledDates:   rescheduled,
		}
		return nil
	})

	if txErr != nil {
		return nil, s.mapScheduleError(txErr)
	}

	return resp, nil
}

// AdminCancelDay cancels every delivery on the given date system-wide,
// extends each active subscription by one day and creates one compensatory
// delivery per subscription. Exactly one cancellation record may exist per
// date, which makes a repeated call for the same date a no-op rejection.
func (s *ScheduleService) AdminCancelDay(ctx context.Context, adminID uuid.UUID, req request_models.AdminLeaveRequest) (*response_models.AdminCancelResponse, error) {
	day, err := utils.ParseDay(req.Date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if utils.IsSunday(day) {
		return nil, utils.ErrSundayNotAllowed
	}

	exists, err := s.cancellationRepo.ExistsForDate(ctx, day)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ErrDuplicateLeaveDate
	}

	var resp *response_models.AdminCancelResponse
	txErr := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		cancelled, err := s.deliveryRepo.CancelAllOn(ctx, day)
		if err != nil {
			return err
		}

		subs, err := s.subscriptionRepo.ListActive(ctx)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(subs))
		for _, sub := range subs {
			ids = append(ids, sub.ID.String())
		}

		record := &db_models.AdminCancellationMessage{
			CancellationDate:         day,
			Message:                  req.Message,
			AffectedSubscriptionIDs:  ids,
			CancelledDeliveriesCount: cancelled,
			CreatedBy:                adminID,
		}
		if err := s.cancellationRepo.Insert(ctx, record); err != nil {
			return err
		}

		for _, sub := range subs {
			newEndDate := utils.NextDay(utils.Day(sub.EndDate))
			if err := s.subscriptionRepo.ExtendForLeave(ctx, sub.ID, newEndDate, req.Message); err != nil {
				return err
			}

			info, err := s.userInfoRepo.GetByAccountID(ctx, sub.AccountID)
			if err != nil {
				return err
			}
			if info == nil {
				log.Printf("no delivery address for account %s, skipping compensatory delivery", sub.AccountID)
				continue
			}

			exists, err := s.deliveryRepo.ExistsOn(ctx, sub.ID, newEndDate)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			// Compensatory deliveries always go out in the morning slot.
			compensatory := &db_models.Delivery{
				AccountID:      sub.AccountID,
				SubscriptionID: sub.ID,
				ProductID:      sub.ProductID,
				Address:        info.Address,
				Slot:           db_models.SlotMorning,
				DeliveryDate:   newEndDate,
				Status:         db_models.DeliveryPending,
			}
			if err := s.deliveryRepo.Insert(ctx, compensatory); err != nil {
				return err
			}
		}

		resp = &response_models.AdminCancelResponse{
			CancellationRecordID:  record.ID.String(),
			CancelledDeliveries:   cancelled,
			SubscriptionsAffected: len(subs),
		}
		return nil
	})

	if txErr != nil {
		return nil, s.mapScheduleError(txErr)
	}

	return resp, nil
}

// UpdateDeliveryStatus sets the delivery's status and, on "delivered", checks
// whether the owning subscription has run out: stray rows past the end date
// are purged and the subscription flips to completed when nothing undelivered
// remains from tomorrow on.
func (s *ScheduleService) UpdateDeliveryStatus(ctx context.Context, req request_models.UpdateDeliveryStatusRequest) (*response_models.StatusUpdateResponse, error) {
	deliveryID, err := uuid.Parse(req.DeliveryID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	status := db_models.DeliveryStatus(req.Status)

	delivery, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if delivery == nil {
		return nil, utils.ErrDeliveryNotFound
	}

	var deliveredAt *int64
	if status == db_models.DeliveryDelivered {
		ts := s.now().Unix()
		deliveredAt = &ts
	}

	resp := &response_models.StatusUpdateResponse{
		DeliveryID: delivery.ID.String(),
		Status:     string(status),
	}

	txErr := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.deliveryRepo.MarkStatus(ctx, delivery.ID, status, deliveredAt); err != nil {
			return err
		}

		sub, err := s.subscriptionRepo.GetByID(ctx, delivery.SubscriptionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return nil
		}

		today := utils.Day(s.now())
		tomorrow := utils.NextDay(today)

		purged, err := s.deliveryRepo.DeleteAfter(ctx, sub.ID, utils.Day(sub.EndDate))
		if err != nil {
			return err
		}
		resp.PurgedCount = purged

		remaining, err := s.deliveryRepo.CountUndeliveredFrom(ctx, sub.ID, tomorrow)
		if err != nil {
			return err
		}

		if sub.Status == db_models.SubStatusActive && !today.Before(utils.Day(sub.EndDate)) && remaining == 0 {
			if err := s.subscriptionRepo.SetStatus(ctx, sub.ID, db_models.SubStatusCompleted, nil); err != nil {
				return err
			}
			resp.SubscriptionCompleted = true
		}
		return nil
	})

	if txErr != nil {
		return nil, utils.ErrDatabaseError
	}

	return resp, nil
}

func (s *ScheduleService) ListAccountDeliveries(ctx context.Context, accountID uuid.UUID) ([]response_models.DeliveryResponse, error) {
	deliveries, err := s.deliveryRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, toDeliveryResponse(d))
	}
	return out, nil
}

// mapScheduleError keeps domain errors intact and folds everything else into
// the generic database sentinel.
func (s *ScheduleService) mapScheduleError(err error) error {
	var pauseLimit *utils.PauseLimitError
	switch {
	case errors.As(err, &pauseLimit),
		errors.Is(err, utils.ErrNothingToPause),
		errors.Is(err, utils.ErrStaleSubscription),
		errors.Is(err, utils.ErrSundayNotAllowed),
		errors.Is(err, utils.ErrDuplicateLeaveDate):
		return err
	default:
		return utils.ErrDatabaseError
	}
}

func toDeliveryResponse(d db_models.Delivery) response_models.DeliveryResponse {
	return response_models.DeliveryResponse{
		ID:             d.ID.String(),
		SubscriptionID: d.SubscriptionID.String(),
		DeliveryDate:   utils.FormatDay(d.DeliveryDate),
		Slot:           string(d.Slot),
		Status:         string(d.Status),
		IsRescheduled:  d.IsRescheduled,
		Line1:          d.Address.Line1,
		Area:           d.Address.Area,
		City:           d.Address.City,
		Pincode:        d.Address.Pincode,
		Landmark:       d.Address.Landmark,
	}
}
