package repository

import (
	"context"
	"hosting-order-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	// FirstOrCreate resolves a customer by email, creating one with the
	// given name if absent. An existing customer keeps its stored name.
	FirstOrCreate(ctx context.Context, email, name string) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) FirstOrCreate(ctx context.Context, email, name string) (*model.Customer, error) {
	// Insert-or-ignore keyed on the email unique index so concurrent
	// submissions for the same email cannot create two rows.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&model.Customer{
		Email: email,
		Name:  name,
	}).Error
	if err != nil {
		return nil, err
	}

	return r.FindByEmail(ctx, email)
}

func (r *customerRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&customer).Error

	if err != nil {
		return nil, err
	}

	return &customer, nil
}
