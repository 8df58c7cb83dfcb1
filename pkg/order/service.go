package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ordertotal/order-total-service/pkg/logger"
)

var ErrInvalidRequest = errors.New("invalid request")

type IRateSource interface {
	GetRate(ctx context.Context, zip string) (float32, error)
}

type service struct {
	rates IRateSource
}

func NewService(rs IRateSource) *service {
	return &service{
		rates: rs,
	}
}

// ComputeTotal parses a raw order body, looks up the sales tax rate for
// its zip code and returns the order with `total = subtotal * (1 + rate)`.
// The incoming total is overwritten no matter what the client sent.
func (s *service) ComputeTotal(ctx context.Context, body []byte) (*Order, error) {
	o, err := parseOrder(body)
	if err != nil {
		logger.Log(ctx).Errorf("order: failed parsing request body as order, %v", err)
		return nil, ErrInvalidRequest
	}

	rate, err := s.rates.GetRate(ctx, o.ShippingZip)
	if err != nil {
		return nil, err
	}

	o.Total = o.Subtotal * (1.0 + rate)
	return o, nil
}

// parseOrder decodes an order strictly: every field of the wire contract
// must be present and well-typed. encoding/json leaves missing fields at
// their zero value, so the check goes through a pointer-field mirror.
func parseOrder(data []byte) (*Order, error) {
	var wire struct {
		OrderID         *int     `json:"order_id"`
		ProductID       *int     `json:"product_id"`
		Quantity        *int     `json:"quantity"`
		Subtotal        *float32 `json:"subtotal"`
		ShippingAddress *string  `json:"shipping_address"`
		ShippingZip     *string  `json:"shipping_zip"`
		Total           *float32 `json:"total"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.OrderID == nil || wire.ProductID == nil || wire.Quantity == nil ||
		wire.Subtotal == nil || wire.ShippingAddress == nil ||
		wire.ShippingZip == nil || wire.Total == nil {
		return nil, errors.New("missing order field")
	}

	return &Order{
		OrderID:         *wire.OrderID,
		ProductID:       *wire.ProductID,
		Quantity:        *wire.Quantity,
		Subtotal:        *wire.Subtotal,
		ShippingAddress: *wire.ShippingAddress,
		ShippingZip:     *wire.ShippingZip,
		Total:           *wire.Total,
	}, nil
}
