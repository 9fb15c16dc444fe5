package dto

import (
	"fmt"
	"hosting-order-service/internal/billing"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
)

// ValidationError reports a malformed or missing request field. Requests
// that fail validation never reach the checkout workflow.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type PlaceOrderRequest struct {
	PackageID     uint   `json:"package_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Domain        string `json:"domain"`
	PaymentMethod string `json:"payment_method"` // credit_card | paypal
	CardToken     string `json:"card_token"`     // required iff payment_method is credit_card
	Currency      string `json:"currency"`       // USD | GBP | EUR
}

// PlaceOrderCommand is a validated order request.
type PlaceOrderCommand struct {
	PackageID     uint
	Name          string
	Email         string
	Domain        string
	PaymentMethod string
	CardToken     string
	Currency      string
}

// Validate checks shape and presence and returns a command the checkout
// workflow can trust, or the first ValidationError found.
func (r *PlaceOrderRequest) Validate() (*PlaceOrderCommand, error) {
	if r.PackageID == 0 {
		return nil, &ValidationError{Field: "package_id", Message: "is required"}
	}
	if r.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if r.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "is required"}
	}
	if r.Domain == "" {
		return nil, &ValidationError{Field: "domain", Message: "is required"}
	}
	if r.PaymentMethod != PaymentMethodCreditCard && r.PaymentMethod != PaymentMethodPaypal {
		return nil, &ValidationError{Field: "payment_method", Message: "must be credit_card or paypal"}
	}
	if r.PaymentMethod == PaymentMethodCreditCard && r.CardToken == "" {
		return nil, &ValidationError{Field: "card_token", Message: "is required for credit_card payments"}
	}
	if !billing.IsSupportedCurrency(r.Currency) {
		return nil, &ValidationError{Field: "currency", Message: "must be one of USD, GBP, EUR"}
	}

	return &PlaceOrderCommand{
		PackageID:     r.PackageID,
		Name:          r.Name,
		Email:         r.Email,
		Domain:        r.Domain,
		PaymentMethod: r.PaymentMethod,
		CardToken:     r.CardToken,
		Currency:      r.Currency,
	}, nil
}

type OrderConfirmation struct {
	InvoiceID   uint            `json:"invoice_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
}

type PlaceOrderResponse struct {
	InvoiceID uint   `json:"invoice_id"`
	Message   string `json:"message"`
}
