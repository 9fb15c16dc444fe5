package service

import (
	"context"
	"errors"
	"fmt"
	"hosting-order-service/internal/client"
	"hosting-order-service/internal/dto"
	"hosting-order-service/internal/model"
	"hosting-order-service/internal/repository"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway ids, matching the seeded payment_gateways rows.
const (
	GatewayPaypal uint = 1
	GatewayCard   uint = 2
)

var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

// GatewayForMethod maps a payment method to its gateway id:
// credit_card charges go to the card gateway, paypal to the wallet gateway.
func GatewayForMethod(method string) (uint, error) {
	switch method {
	case dto.PaymentMethodCreditCard:
		return GatewayCard, nil
	case dto.PaymentMethodPaypal:
		return GatewayPaypal, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, method)
	}
}

type PaymentRequest struct {
	InvoiceID uint
	GatewayID uint
	Amount    decimal.Decimal
	Currency  string
	Method    string
	CardToken string // only for credit_card
}

type PaymentResult struct {
	Success       bool
	TransactionID string
	Reason        string
}

// PaymentProcessor charges one invoice through the routed gateway.
// Callers only look at success/not-success; reasons are informational.
type PaymentProcessor interface {
	Process(ctx context.Context, req *PaymentRequest) (*PaymentResult, error)
}

type paymentProcessorImpl struct {
	braintreeClient client.BraintreeClient
	paypalClient    client.PaypalClient
	paymentRepo     repository.PaymentRepository
}

func NewPaymentProcessor(
	braintreeClient client.BraintreeClient,
	paypalClient client.PaypalClient,
	paymentRepo repository.PaymentRepository,
) PaymentProcessor {
	return &paymentProcessorImpl{
		braintreeClient: braintreeClient,
		paypalClient:    paypalClient,
		paymentRepo:     paymentRepo,
	}
}

func (p *paymentProcessorImpl) Process(ctx context.Context, req *PaymentRequest) (*PaymentResult, error) {
	var (
		transactionID string
		err           error
	)

	switch req.GatewayID {
	case GatewayCard:
		transactionID, err = p.braintreeClient.ChargeCard(ctx, req.CardToken, req.Amount)
	case GatewayPaypal:
		transactionID, err = p.paypalClient.Charge(ctx, req.Amount, req.Currency)
	default:
		return nil, fmt.Errorf("unknown payment gateway id: %d", req.GatewayID)
	}

	if err != nil {
		return &PaymentResult{
			Success: false,
			Reason:  err.Error(),
		}, nil
	}

	payment := &model.Payment{
		ID:               uuid.NewString(),
		InvoiceID:        req.InvoiceID,
		PaymentGatewayID: req.GatewayID,
		TransactionID:    transactionID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Status:           model.PaymentStatusCompleted,
	}
	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		// The charge went through; losing the local record must not fail
		// the order.
		log.Println("record payment:", err)
	}

	return &PaymentResult{
		Success:       true,
		TransactionID: transactionID,
	}, nil
}
