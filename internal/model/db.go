package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PackageTypeHosting = "hosting"

	SubscriptionStatusActive = "active"

	HostingAccountStatusPending = "pending"
	HostingAccountStatusActive  = "active"

	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"

	PaymentStatusCompleted = "completed"
)

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Package struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"size:512"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"size:8;not null"`
	Type        string          `gorm:"size:32;index;not null"` // hosting
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Subscription struct {
	ID            uint      `gorm:"primaryKey"`
	CustomerID    uint      `gorm:"index;not null"`
	PackageID     uint      `gorm:"index;not null"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`
	RenewalPeriod string    `gorm:"size:16;not null"` // yearly
	Status        string    `gorm:"size:32;index;not null"`
	Currency      string    `gorm:"size:8;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type HostingAccount struct {
	ID             uint   `gorm:"primaryKey"`
	CustomerID     uint   `gorm:"index;not null"`
	SubscriptionID uint   `gorm:"index;not null"`
	Domain         string `gorm:"size:255;not null"`
	Package        string `gorm:"size:255;not null"` // package name at order time
	Status         string `gorm:"size:32;index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Invoice struct {
	ID          uint            `gorm:"primaryKey"`
	CustomerID  uint            `gorm:"index;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"size:8;not null"`
	Status      string          `gorm:"size:32;index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InvoiceItem struct {
	ID         uint            `gorm:"primaryKey"`
	InvoiceID  uint            `gorm:"index;not null"`
	PackageID  uint            `gorm:"index;not null"`
	Quantity   int32           `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency   string          `gorm:"size:8;not null"`
	CreatedAt  time.Time
}

type PaymentGateway struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64;not null"`
}

type Payment struct {
	ID               string          `gorm:"primaryKey;size:64;not null"` // uuid
	InvoiceID        uint            `gorm:"index;not null"`
	PaymentGatewayID uint            `gorm:"index;not null"`
	TransactionID    string          `gorm:"size:128;not null"` // processor's transaction id
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency         string          `gorm:"size:8;not null"`
	Status           string          `gorm:"size:32;not null"`
	CreatedAt        time.Time
}
