package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tradesim/platform/internal/core/domain"
)

type stubQuotes map[string]domain.Quote

func (s stubQuotes) Quote(symbol string) (domain.Quote, bool) {
	q, ok := s[symbol]
	return q, ok
}

func newTradingService() *TradingService {
	quotes := stubQuotes{
		"BTC": {Symbol: "BTC", Price: 67420.50},
		"ADA": {Symbol: "ADA", Price: 0.5},
	}
	portfolio := domain.Portfolio{
		Cash: 2500,
		Positions: []domain.Position{
			{Symbol: "BTC", Quantity: 0.1},
			{Symbol: "ADA", Quantity: 1000},
		},
	}
	return NewTradingService(quotes, portfolio, discardLogger)
}

func TestTradingService_PlaceOrder_Buy(t *testing.T) {
	svc := newTradingService()

	conf, err := svc.PlaceOrder(context.Background(), domain.Order{Side: domain.SideBuy, Symbol: "ADA", Quantity: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Value != 50 || conf.Price != 0.5 {
		t.Errorf("unexpected confirmation: %+v", conf)
	}
}

func TestTradingService_PlaceOrder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		order domain.Order
		want  error
	}{
		{"zero quantity", domain.Order{Side: domain.SideBuy, Symbol: "BTC", Quantity: 0}, domain.ErrInvalidQuantity},
		{"negative quantity", domain.Order{Side: domain.SideSell, Symbol: "BTC", Quantity: -1}, domain.ErrInvalidQuantity},
		{"unknown symbol", domain.Order{Side: domain.SideBuy, Symbol: "DOGE", Quantity: 1}, domain.ErrUnknownSymbol},
		{"insufficient funds", domain.Order{Side: domain.SideBuy, Symbol: "BTC", Quantity: 1}, domain.ErrInsufficientFunds},
		{"insufficient position", domain.Order{Side: domain.SideSell, Symbol: "BTC", Quantity: 0.2}, domain.ErrInsufficientPosition},
		{"bad side", domain.Order{Side: "short", Symbol: "BTC", Quantity: 0.01}, domain.ErrInvalidOrderSide},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTradingService().PlaceOrder(context.Background(), tc.order)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTradingService_PlaceOrder_SellWithinHolding(t *testing.T) {
	conf, err := newTradingService().PlaceOrder(context.Background(), domain.Order{Side: domain.SideSell, Symbol: "BTC", Quantity: 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Value != 6742.05 {
		t.Errorf("expected value 6742.05, got %v", conf.Value)
	}
}
