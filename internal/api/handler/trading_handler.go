package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
	"github.com/tradesim/platform/internal/fixtures"
)

// FeedStreamer upgrades a request to the live price feed and streams until
// the client leaves.
type FeedStreamer interface {
	Upgrade(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

type TradingHandler struct {
	data    *fixtures.Data
	trading ports.TradingService
	feed    FeedStreamer
	log     zerolog.Logger
}

func NewTradingHandler(data *fixtures.Data, trading ports.TradingService, feed FeedStreamer, log zerolog.Logger) *TradingHandler {
	return &TradingHandler{data: data, trading: trading, feed: feed, log: log}
}

// Trading renders the participant trading screen.
//
// @Summary      Trading screen
// @Tags         trading
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /participant/trading [get]
func (h *TradingHandler) Trading(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	return render(c, "participant_trading", tradingView{
		User:          ws.Session.Identity(),
		Market:        h.data.Market,
		Portfolio:     h.data.Portfolio,
		Leaderboard:   h.data.LiveLeaderboard,
		TimeRemaining: h.data.TimeRemaining,
	})
}

// PlaceOrder validates an order against the portfolio. Nothing is executed.
//
// @Summary      Place an order
// @Tags         trading
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order"
// @Success      200   {object}  ports.OrderConfirmation
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /participant/trading/orders [post]
func (h *TradingHandler) PlaceOrder(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		metrics.OrdersTotal.WithLabelValues(req.Side, "rejected").Inc()
		return invalidInput(err)
	}

	order := domain.Order{Side: domain.OrderSide(req.Side), Symbol: req.Symbol, Quantity: req.Quantity}
	conf, err := h.trading.PlaceOrder(c.Request().Context(), order)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues(req.Side, "rejected").Inc()
		return err
	}

	metrics.OrdersTotal.WithLabelValues(req.Side, "accepted").Inc()
	return c.JSON(http.StatusOK, conf)
}

// Feed streams display-only quote updates over a websocket.
//
// @Summary      Live price feed (websocket)
// @Tags         trading
// @Success      101
// @Router       /participant/trading/feed [get]
func (h *TradingHandler) Feed(c echo.Context) error {
	metrics.FeedClients.Inc()
	defer metrics.FeedClients.Dec()

	if err := h.feed.Upgrade(c.Request().Context(), c.Response(), c.Request()); err != nil {
		h.log.Debug().Err(err).Msg("feed stream ended")
	}
	return nil
}
