package repository

import (
	"context"
	"hosting-order-service/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PackageRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, packageID uint) (*model.Package, error)
	GetByType(ctx context.Context, packageType string) ([]*model.Package, error)
}

type packageRepoImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepoImpl{
		db: db,
	}
}

func (r *packageRepoImpl) Seed(ctx context.Context) error {
	packages := []model.Package{
		{ID: 1, Name: "Starter Hosting", Description: "1 site, 10GB SSD", Price: decimal.RequireFromString("49.00"), Currency: "USD", Type: model.PackageTypeHosting},
		{ID: 2, Name: "Business Hosting", Description: "10 sites, 50GB SSD", Price: decimal.RequireFromString("100.00"), Currency: "USD", Type: model.PackageTypeHosting},
		{ID: 3, Name: "Enterprise Hosting", Description: "Unlimited sites, 200GB SSD", Price: decimal.RequireFromString("250.00"), Currency: "USD", Type: model.PackageTypeHosting},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&packages).Error
}

func (r *packageRepoImpl) FindByID(ctx context.Context, packageID uint) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).
		Where("id = ?", packageID).
		First(&pkg).Error

	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *packageRepoImpl) GetByType(ctx context.Context, packageType string) ([]*model.Package, error) {
	var packages []*model.Package
	err := r.db.WithContext(ctx).
		Where("type = ?", packageType).
		Find(&packages).
		Error

	if err != nil {
		return nil, err
	}

	return packages, nil
}
