package repository

import (
	"context"
	"hosting-order-service/internal/model"
	"time"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	CreateItem(ctx context.Context, item *model.InvoiceItem) error
	FindByID(ctx context.Context, invoiceID uint) (*model.Invoice, error)
	GetItems(ctx context.Context, invoiceID uint) ([]*model.InvoiceItem, error)
	MarkPaid(ctx context.Context, invoiceID uint) error
	Delete(ctx context.Context, invoiceID uint) error
}

type invoiceRepoImpl struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepoImpl{
		db: db,
	}
}

func (r *invoiceRepoImpl) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepoImpl) CreateItem(ctx context.Context, item *model.InvoiceItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *invoiceRepoImpl) FindByID(ctx context.Context, invoiceID uint) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Where("id = ?", invoiceID).
		First(&invoice).Error

	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

func (r *invoiceRepoImpl) GetItems(ctx context.Context, invoiceID uint) ([]*model.InvoiceItem, error) {
	var items []*model.InvoiceItem
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *invoiceRepoImpl) MarkPaid(ctx context.Context, invoiceID uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("id = ?", invoiceID).
		Where("status = ?", model.InvoiceStatusPending).
		Updates(map[string]interface{}{
			"status":     model.InvoiceStatusPaid,
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

func (r *invoiceRepoImpl) Delete(ctx context.Context, invoiceID uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.Invoice{}, invoiceID).
		Error
}
