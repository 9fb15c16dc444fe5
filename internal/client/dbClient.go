package client

import (
	"hosting-order-service/internal/model"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	var err error
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Package{},
		&model.Subscription{},
		&model.HostingAccount{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.PaymentGateway{},
		&model.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
