package client

import (
	"context"
	"fmt"
	"hosting-order-service/internal/config"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
)

// BraintreeClient charges tokenized cards. Used as the card gateway behind
// the credit_card payment method.
type BraintreeClient interface {
	// ChargeCard charges a tokenized card credential for the given amount,
	// capturing the funds immediately. Returns the processor transaction id.
	ChargeCard(ctx context.Context, cardToken string, amount decimal.Decimal) (string, error)
}

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

func NewBraintreeClient(cfg *config.Braintree) BraintreeClient {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeClientImpl{
		gateway: gateway,
	}
}

func (c *braintreeClientImpl) ChargeCard(ctx context.Context, cardToken string, amount decimal.Decimal) (string, error) {
	// Braintree expects NewDecimal(unscaled, scale). For 2 decimal places:
	// 90.00 -> braintree.NewDecimal(9000, 2)
	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()
	btAmount := braintree.NewDecimal(cents, 2)

	req := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             btAmount,
		PaymentMethodToken: cardToken,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	tx, err := c.gateway.Transaction().Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transaction creation failed: %w", err)
	}

	if tx.Status == braintree.TransactionStatusProcessorDeclined {
		return "", fmt.Errorf("transaction declined by processor: %s", tx.ProcessorResponseText)
	}

	return tx.Id, nil
}
