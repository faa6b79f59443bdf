package services

import (
	"context"

	"github.com/google/uuid"

	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/internal/repositories"
	"fruitbox/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetUserInfo(ctx context.Context, accountID uuid.UUID) (*response_models.UserInfoResponse, error)
	UpsertUserInfo(ctx context.Context, accountID uuid.UUID, request request_models.UpsertUserInfoRequest) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	userInfoRepo repositories.UserInfoRepository
}

func NewAccountService(accountRepo repositories.AccountRepository, userInfoRepo repositories.UserInfoRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		userInfoRepo: userInfoRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashedPassword,
		Role:         utils.RoleUser,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		Role:  account.Role,
		Name:  account.Name,
	}, nil
}

func (a *AccountService) GetUserInfo(ctx context.Context, accountID uuid.UUID) (*response_models.UserInfoResponse, error) {
	info, err := a.userInfoRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if info == nil {
		return nil, utils.ErrUserInfoNotFound
	}

	return &response_models.UserInfoResponse{
		Line1:    info.Address.Line1,
		Area:     info.Address.Area,
		City:     info.Address.City,
		Pincode:  info.Address.Pincode,
		Landmark: info.Address.Landmark,
		Slot:     string(info.Slot),
	}, nil
}

// UpsertUserInfo replaces the live address. Existing deliveries keep the
// snapshot they were generated with.
func (a *AccountService) UpsertUserInfo(ctx context.Context, accountID uuid.UUID, request request_models.UpsertUserInfoRequest) error {
	info := &db_models.UserInfo{
		AccountID: accountID,
		Address: db_models.Address{
			Line1:    request.Line1,
			Area:     request.Area,
			City:     request.City,
			Pincode:  request.Pincode,
			Landmark: request.Landmark,
		},
		Slot: db_models.DeliverySlot(request.Slot),
	}

	if err := a.userInfoRepo.Upsert(ctx, info); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
