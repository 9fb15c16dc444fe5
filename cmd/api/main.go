package main

import (
	"context"
	"fmt"
	"hosting-order-service/internal/billing"
	"hosting-order-service/internal/client"
	"hosting-order-service/internal/config"
	"hosting-order-service/internal/repository"
	"hosting-order-service/internal/server"
	"hosting-order-service/internal/service"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	braintreeClient := client.NewBraintreeClient(&cfg.BrainTree)
	paypalClient := client.NewPaypalClient(&cfg.Paypal)

	customerRepo := repository.NewCustomerRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	accountRepo := repository.NewHostingAccountRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	ctx := context.Background()
	if err := packageRepo.Seed(ctx); err != nil {
		log.Fatal("seed packages:", err)
	}
	if err := paymentRepo.SeedGateways(ctx); err != nil {
		log.Fatal("seed payment gateways:", err)
	}

	processor := service.NewPaymentProcessor(braintreeClient, paypalClient, paymentRepo)
	orderService := service.NewOrderService(
		customerRepo,
		packageRepo,
		subRepo,
		accountRepo,
		invoiceRepo,
		billing.NewConverter(),
		processor,
		cfg.Payment.Timeout,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(orderService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
