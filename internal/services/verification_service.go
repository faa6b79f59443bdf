package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/internal/repositories"
	"fruitbox/pkg/utils"
)

type VerificationServiceInterface interface {
	Submit(ctx context.Context, accountID uuid.UUID, req request_models.SubmitVerificationRequest) (*response_models.VerificationResponse, error)
	Decide(ctx context.Context, req request_models.DecideVerificationRequest) error
	ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.VerificationResponse, error)
	ListPending(ctx context.Context) ([]response_models.VerificationResponse, error)
}

type VerificationService struct {
	verificationRepo repositories.VerificationRepository
	accountRepo      repositories.AccountRepository
	mailService      IMailService
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
) VerificationServiceInterface {
	return &VerificationService{
		verificationRepo: verificationRepo,
		accountRepo:      accountRepo,
		mailService:      mailService,
	}
}

// Submit records a candidate address. Only one verification may be pending
// per account; a resubmission is allowed once the previous one is decided.
func (v *VerificationService) Submit(ctx context.Context, accountID uuid.UUID, req request_models.SubmitVerificationRequest) (*response_models.VerificationResponse, error) {
	pending, err := v.verificationRepo.HasPending(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pending {
		return nil, utils.ErrVerificationPending
	}

	record := &db_models.VerifyDelivery{
		AccountID: accountID,
		Address: db_models.Address{
			Line1:    req.Line1,
			Area:     req.Area,
			City:     req.City,
			Pincode:  req.Pincode,
			Landmark: req.Landmark,
		},
		Status: db_models.VerifyPending,
	}

	if err := v.verificationRepo.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toVerificationResponse(*record)
	return &resp, nil
}

func (v *VerificationService) Decide(ctx context.Context, req request_models.DecideVerificationRequest) error {
	verificationID, err := uuid.Parse(req.VerificationID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	record, err := v.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return utils.ErrVerificationNotFound
	}
	if record.Status != db_models.VerifyPending {
		return utils.ErrInvalidInput
	}

	status := db_models.VerifyDeliveryStatus(req.Status)
	if err := v.verificationRepo.Decide(ctx, record.ID, status, req.DeliveryCharge); err != nil {
		return utils.ErrDatabaseError
	}

	// Notification is best effort; the decision stands even if mail fails.
	account, err := v.accountRepo.FindById(ctx, record.AccountID.String())
	if err != nil || account == nil {
		log.Printf("could not load account %s for verification mail: %v", record.AccountID, err)
		return nil
	}

	subject := "Your delivery address has been reviewed"
	body := fmt.Sprintf("Hi %s, your address in %s was marked %s.", account.Name, record.Address.Area, req.Status)
	if err := v.mailService.SendMailToNotifyUser(account.Email, subject, body); err != nil {
		log.Printf("verification mail to %s failed: %v", account.Email, err)
	}

	return nil
}

func (v *VerificationService) ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.VerificationResponse, error) {
	records, err := v.verificationRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.VerificationResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toVerificationResponse(record))
	}
	return out, nil
}

func (v *VerificationService) ListPending(ctx context.Context) ([]response_models.VerificationResponse, error) {
	records, err := v.verificationRepo.ListPending(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.VerificationResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toVerificationResponse(record))
	}
	return out, nil
}

func toVerificationResponse(record db_models.VerifyDelivery) response_models.VerificationResponse {
	return response_models.VerificationResponse{
		ID:             record.ID.String(),
		Line1:          record.Address.Line1,
		Area:           record.Address.Area,
		City:           record.Address.City,
		Pincode:        record.Address.Pincode,
		Landmark:       record.Address.Landmark,
		Status:         string(record.Status),
		DeliveryCharge: record.DeliveryCharge,
	}
}
