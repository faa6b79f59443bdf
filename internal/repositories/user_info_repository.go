package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fruitbox/internal/models/db_models"
)

type UserInfoRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.UserInfo, error)
	Upsert(ctx context.Context, info *db_models.UserInfo) error
}

type userInfoRepository struct {
	db *gorm.DB
}

func NewUserInfoRepository(db *gorm.DB) UserInfoRepository {
	return &userInfoRepository{db: db}
}

func (r *userInfoRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.UserInfo, error) {
	var info db_models.UserInfo
	err := r.db.WithContext(ctx).First(&info, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &info, nil
}

func (r *userInfoRepository) Upsert(ctx context.Context, info *db_models.UserInfo) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"address_line1", "address_area", "address_city",
				"address_pincode", "address_landmark", "slot", "updated_at",
			}),
		}).
		Create(info).Error
}
