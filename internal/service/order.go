package service

import (
	"context"
	"errors"
	"fmt"
	"hosting-order-service/internal/billing"
	"hosting-order-service/internal/dto"
	"hosting-order-service/internal/model"
	"hosting-order-service/internal/repository"
	"log"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrPaymentFailed   = errors.New("payment processing failed")
)

type OrderService interface {
	// PlaceOrder runs the checkout workflow: resolve customer, price the
	// package, create the provisional subscription/account/invoice batch,
	// charge the gateway, then commit or compensate.
	PlaceOrder(ctx context.Context, cmd *dto.PlaceOrderCommand) (*dto.PlaceOrderResponse, error)
	ListHostingPackages(ctx context.Context) ([]*model.Package, error)
	GetConfirmation(ctx context.Context, invoiceID uint) (*dto.OrderConfirmation, error)
}

type orderServiceImpl struct {
	customerRepo   repository.CustomerRepository
	packageRepo    repository.PackageRepository
	subRepo        repository.SubscriptionRepository
	accountRepo    repository.HostingAccountRepository
	invoiceRepo    repository.InvoiceRepository
	converter      billing.Converter
	processor      PaymentProcessor
	paymentTimeout time.Duration
}

func NewOrderService(
	customerRepo repository.CustomerRepository,
	packageRepo repository.PackageRepository,
	subRepo repository.SubscriptionRepository,
	accountRepo repository.HostingAccountRepository,
	invoiceRepo repository.InvoiceRepository,
	converter billing.Converter,
	processor PaymentProcessor,
	paymentTimeout time.Duration,
) OrderService {
	return &orderServiceImpl{
		customerRepo:   customerRepo,
		packageRepo:    packageRepo,
		subRepo:        subRepo,
		accountRepo:    accountRepo,
		invoiceRepo:    invoiceRepo,
		converter:      converter,
		processor:      processor,
		paymentTimeout: paymentTimeout,
	}
}

func (s *orderServiceImpl) PlaceOrder(ctx context.Context, cmd *dto.PlaceOrderCommand) (*dto.PlaceOrderResponse, error) {
	customer, err := s.customerRepo.FirstOrCreate(ctx, cmd.Email, cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	pkg, err := s.packageRepo.FindByID(ctx, cmd.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("load package: %w", err)
	}

	// Convert once, up front, so every record below carries the same
	// price in the requested currency.
	convertedPrice, err := s.converter.Convert(pkg.Price, pkg.Currency, cmd.Currency)
	if err != nil {
		return nil, fmt.Errorf("convert price: %w", err)
	}

	gatewayID, err := GatewayForMethod(cmd.PaymentMethod)
	if err != nil {
		return nil, err
	}

	// Provisional batch. Any create failure rolls back what exists so far
	// and aborts without attempting payment.
	now := time.Now()
	sub := &model.Subscription{
		CustomerID:    customer.ID,
		PackageID:     pkg.ID,
		StartDate:     now,
		EndDate:       now.AddDate(1, 0, 0),
		RenewalPeriod: "yearly",
		Status:        model.SubscriptionStatusActive,
		Currency:      cmd.Currency,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	account := &model.HostingAccount{
		CustomerID:     customer.ID,
		SubscriptionID: sub.ID,
		Domain:         cmd.Domain,
		Package:        pkg.Name,
		Status:         model.HostingAccountStatusPending,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.compensate(ctx, sub, nil, nil)
		return nil, fmt.Errorf("create hosting account: %w", err)
	}

	invoice := &model.Invoice{
		CustomerID:  customer.ID,
		TotalAmount: convertedPrice,
		Currency:    cmd.Currency,
		Status:      model.InvoiceStatusPending,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		s.compensate(ctx, sub, account, nil)
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	item := &model.InvoiceItem{
		InvoiceID:  invoice.ID,
		PackageID:  pkg.ID,
		Quantity:   1,
		UnitPrice:  convertedPrice,
		TotalPrice: convertedPrice,
		Currency:   cmd.Currency,
	}
	if err := s.invoiceRepo.CreateItem(ctx, item); err != nil {
		s.compensate(ctx, sub, account, invoice)
		return nil, fmt.Errorf("create invoice item: %w", err)
	}

	paymentCtx, cancel := context.WithTimeout(ctx, s.paymentTimeout)
	defer cancel()

	result, err := s.processor.Process(paymentCtx, &PaymentRequest{
		InvoiceID: invoice.ID,
		GatewayID: gatewayID,
		Amount:    convertedPrice,
		Currency:  cmd.Currency,
		Method:    cmd.PaymentMethod,
		CardToken: cmd.CardToken,
	})
	if err != nil || result == nil || !result.Success {
		switch {
		case err != nil:
			log.Println("process payment:", err)
		case result == nil:
			log.Println("process payment: processor returned no result")
		default:
			log.Println("payment declined:", result.Reason)
		}
		s.compensate(ctx, sub, account, invoice)
		return nil, ErrPaymentFailed
	}

	if err := s.invoiceRepo.MarkPaid(ctx, invoice.ID); err != nil {
		return nil, fmt.Errorf("mark invoice paid: %w", err)
	}
	if err := s.accountRepo.Activate(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("activate hosting account: %w", err)
	}

	return &dto.PlaceOrderResponse{
		InvoiceID: invoice.ID,
		Message:   "Your order has been placed successfully!",
	}, nil
}

// compensate undoes the provisional records of a failed order. Best-effort:
// every delete is attempted even if an earlier one fails, and the
// aggregated error is logged rather than surfaced.
//
// TODO: invoice items are left orphaned when their invoice is deleted;
// cascade the delete once the schema gains the foreign key.
func (s *orderServiceImpl) compensate(ctx context.Context, sub *model.Subscription, account *model.HostingAccount, invoice *model.Invoice) {
	var errs []error

	if sub != nil {
		if err := s.subRepo.Delete(ctx, sub.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete subscription %d: %w", sub.ID, err))
		}
	}
	if account != nil {
		if err := s.accountRepo.Delete(ctx, account.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete hosting account %d: %w", account.ID, err))
		}
	}
	if invoice != nil {
		if err := s.invoiceRepo.Delete(ctx, invoice.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete invoice %d: %w", invoice.ID, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		log.Println("order compensation incomplete:", err)
	}
}

func (s *orderServiceImpl) ListHostingPackages(ctx context.Context) ([]*model.Package, error) {
	return s.packageRepo.GetByType(ctx, model.PackageTypeHosting)
}

func (s *orderServiceImpl) GetConfirmation(ctx context.Context, invoiceID uint) (*dto.OrderConfirmation, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderConfirmation{
		InvoiceID:   invoice.ID,
		TotalAmount: invoice.TotalAmount,
		Currency:    invoice.Currency,
		Status:      invoice.Status,
	}, nil
}
