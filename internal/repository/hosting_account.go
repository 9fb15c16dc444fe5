package repository

import (
	"context"
	"hosting-order-service/internal/model"
	"time"

	"gorm.io/gorm"
)

type HostingAccountRepository interface {
	Create(ctx context.Context, account *model.HostingAccount) error
	Activate(ctx context.Context, accountID uint) error
	FindByID(ctx context.Context, accountID uint) (*model.HostingAccount, error)
	Delete(ctx context.Context, accountID uint) error
}

type hostingAccountRepoImpl struct {
	db *gorm.DB
}

func NewHostingAccountRepository(db *gorm.DB) HostingAccountRepository {
	return &hostingAccountRepoImpl{
		db: db,
	}
}

func (r *hostingAccountRepoImpl) Create(ctx context.Context, account *model.HostingAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *hostingAccountRepoImpl) Activate(ctx context.Context, accountID uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.HostingAccount{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"status":     model.HostingAccountStatusActive,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *hostingAccountRepoImpl) FindByID(ctx context.Context, accountID uint) (*model.HostingAccount, error) {
	var account model.HostingAccount
	err := r.db.WithContext(ctx).
		Where("id = ?", accountID).
		First(&account).
		Error

	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *hostingAccountRepoImpl) Delete(ctx context.Context, accountID uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.HostingAccount{}, accountID).
		Error
}
