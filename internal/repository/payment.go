package repository

import (
	"context"
	"hosting-order-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository interface {
	SeedGateways(ctx context.Context) error
	Create(ctx context.Context, payment *model.Payment) error
	GetByInvoiceID(ctx context.Context, invoiceID uint) ([]*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

// SeedGateways pins the gateway ids payment routing relies on:
// 1 is the PayPal wallet gateway, 2 is the card gateway.
func (r *paymentRepoImpl) SeedGateways(ctx context.Context) error {
	gateways := []model.PaymentGateway{
		{ID: 1, Name: "PayPal"},
		{ID: 2, Name: "Braintree"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&gateways).Error
}

func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) GetByInvoiceID(ctx context.Context, invoiceID uint) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Find(&payments).
		Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}
