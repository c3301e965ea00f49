package domain

import "errors"

// Quote is a single market data row shown on the trading screen.
type Quote struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Name          string  `json:"name" yaml:"name"`
	Price         float64 `json:"price" yaml:"price"`
	Change        float64 `json:"change" yaml:"change"`
	ChangePercent float64 `json:"changePercent" yaml:"changePercent"`
}

// Position is a holding in the participant portfolio.
type Position struct {
	Symbol       string  `json:"symbol" yaml:"symbol"`
	Quantity     float64 `json:"quantity" yaml:"quantity"`
	AvgPrice     float64 `json:"avgPrice" yaml:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice" yaml:"currentPrice"`
	PnL          float64 `json:"pnl" yaml:"pnl"`
}

// Portfolio is the participant's account summary.
type Portfolio struct {
	TotalValue float64    `json:"totalValue" yaml:"totalValue"`
	Cash       float64    `json:"cash" yaml:"cash"`
	PnL        float64    `json:"pnl" yaml:"pnl"`
	PnLPercent float64    `json:"pnlPercent" yaml:"pnlPercent"`
	Positions  []Position `json:"positions" yaml:"positions"`
}

// Holding returns the quantity held for symbol.
func (p Portfolio) Holding(symbol string) float64 {
	for _, pos := range p.Positions {
		if pos.Symbol == symbol {
			return pos.Quantity
		}
	}
	return 0
}

// OrderSide is buy or sell.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// Order is a participant trade request. Orders are validated, never executed.
type Order struct {
	Side     OrderSide
	Symbol   string
	Quantity float64
}

var ErrInvalidQuantity = errors.New("quantity must be greater than zero")
var ErrUnknownSymbol = errors.New("unknown symbol")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrInsufficientPosition = errors.New("insufficient position")
var ErrInvalidOrderSide = errors.New("order side must be buy or sell")
