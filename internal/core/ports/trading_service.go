package ports

import (
	"context"

	"github.com/tradesim/platform/internal/core/domain"
)

// OrderConfirmation is returned for an accepted order. Nothing is executed.
type OrderConfirmation struct {
	Side     domain.OrderSide `json:"side"`
	Symbol   string           `json:"symbol"`
	Quantity float64          `json:"quantity"`
	Price    float64          `json:"price"`
	Value    float64          `json:"value"`
}

// TradingService validates participant orders against the fixture
// portfolio and market.
type TradingService interface {
	PlaceOrder(ctx context.Context, order domain.Order) (*OrderConfirmation, error)
}
