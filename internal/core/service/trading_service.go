package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
)

// QuoteSource resolves the display price for a symbol.
type QuoteSource interface {
	Quote(symbol string) (domain.Quote, bool)
}

// TradingService checks orders against the sample portfolio. Accepted
// orders are confirmed but never executed, so the portfolio never changes.
type TradingService struct {
	quotes    QuoteSource
	portfolio domain.Portfolio
	logger    zerolog.Logger
}

func NewTradingService(quotes QuoteSource, portfolio domain.Portfolio, logger zerolog.Logger) *TradingService {
	return &TradingService{quotes: quotes, portfolio: portfolio, logger: logger}
}

// PlaceOrder validates order and returns its confirmation.
func (s *TradingService) PlaceOrder(ctx context.Context, order domain.Order) (*ports.OrderConfirmation, error) {
	if order.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	quote, ok := s.quotes.Quote(order.Symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSymbol, order.Symbol)
	}

	value := order.Quantity * quote.Price
	switch order.Side {
	case domain.SideBuy:
		if value > s.portfolio.Cash {
			return nil, fmt.Errorf("%w: required $%.2f, available $%.2f", domain.ErrInsufficientFunds, value, s.portfolio.Cash)
		}
	case domain.SideSell:
		if held := s.portfolio.Holding(order.Symbol); order.Quantity > held {
			return nil, fmt.Errorf("%w: selling %g %s, holding %g", domain.ErrInsufficientPosition, order.Quantity, order.Symbol, held)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOrderSide, order.Side)
	}

	s.logger.Info().
		Str("side", string(order.Side)).
		Str("symbol", order.Symbol).
		Float64("quantity", order.Quantity).
		Float64("value", value).
		Msg("order placed")

	return &ports.OrderConfirmation{
		Side:     order.Side,
		Symbol:   order.Symbol,
		Quantity: order.Quantity,
		Price:    quote.Price,
		Value:    value,
	}, nil
}
