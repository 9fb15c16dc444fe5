package repository

import (
	"context"
	"hosting-order-service/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	FindByID(ctx context.Context, subscriptionID uint) (*model.Subscription, error)
	Delete(ctx context.Context, subscriptionID uint) error
}

type subscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepoImpl{
		db: db,
	}
}

func (r *subscriptionRepoImpl) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepoImpl) FindByID(ctx context.Context, subscriptionID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Where("id = ?", subscriptionID).
		First(&sub).
		Error

	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepoImpl) Delete(ctx context.Context, subscriptionID uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.Subscription{}, subscriptionID).
		Error
}
