package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/request_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/internal/repositories"
	"fruitbox/pkg/utils"
)

type DeliveryBoyServiceInterface interface {
	Register(ctx context.Context, req request_models.DeliveryBoyRegisterRequest) error
	Login(ctx context.Context, req request_models.DeliveryBoyLoginRequest) (*response_models.LoginResponse, error)
	UpdateProfile(ctx context.Context, boyID uuid.UUID, req request_models.DeliveryBoyProfileRequest) error
	TodayDeliveries(ctx context.Context, boyID uuid.UUID) ([]response_models.DeliveryResponse, error)
}

type DeliveryBoyService struct {
	deliveryBoyRepo repositories.DeliveryBoyRepository
	deliveryRepo    repositories.DeliveryRepository
	now             func() time.Time
}

func NewDeliveryBoyService(
	deliveryBoyRepo repositories.DeliveryBoyRepository,
	deliveryRepo repositories.DeliveryRepository,
) DeliveryBoyServiceInterface {
	return &DeliveryBoyService{
		deliveryBoyRepo: deliveryBoyRepo,
		deliveryRepo:    deliveryRepo,
		now:             time.Now,
	}
}

func (d *DeliveryBoyService) Register(ctx context.Context, req request_models.DeliveryBoyRegisterRequest) error {
	existing, err := d.deliveryBoyRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrPhoneAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	boy := &db_models.DeliveryBoy{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		ServiceAreas: req.ServiceAreas,
	}

	if err := d.deliveryBoyRepo.Insert(ctx, boy); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (d *DeliveryBoyService) Login(ctx context.Context, req request_models.DeliveryBoyLoginRequest) (*response_models.LoginResponse, error) {
	boy, err := d.deliveryBoyRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if boy == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(boy.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(boy.ID, utils.RoleDeliveryBoy)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		Role:  utils.RoleDeliveryBoy,
		Name:  boy.Name,
	}, nil
}

func (d *DeliveryBoyService) UpdateProfile(ctx context.Context, boyID uuid.UUID, req request_models.DeliveryBoyProfileRequest) error {
	boy, err := d.deliveryBoyRepo.FindById(ctx, boyID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if boy == nil {
		return utils.ErrAccountNotFound
	}

	if req.Name != "" {
		boy.Name = req.Name
	}
	if len(req.ServiceAreas) > 0 {
		boy.ServiceAreas = req.ServiceAreas
	}
	if req.ProfileImageURL != "" {
		boy.ProfileImageURL = req.ProfileImageURL
	}

	if err := d.deliveryBoyRepo.Save(ctx, boy); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// TodayDeliveries lists the pending deliveries dated today whose address area
// falls inside the boy's service areas.
func (d *DeliveryBoyService) TodayDeliveries(ctx context.Context, boyID uuid.UUID) ([]response_models.DeliveryResponse, error) {
	boy, err := d.deliveryBoyRepo.FindById(ctx, boyID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if boy == nil {
		return nil, utils.ErrAccountNotFound
	}

	today := utils.Day(d.now())
	deliveries, err := d.deliveryRepo.ListPendingOnDayInAreas(ctx, today, boy.ServiceAreas)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DeliveryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		out = append(out, toDeliveryResponse(delivery))
	}
	return out, nil
}
