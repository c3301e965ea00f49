package feed

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 512
)

// DefaultInterval is the time between two frames.
const DefaultInterval = time.Second

// Upgrader is used for every feed connection. Cross-origin upgrades are
// refused.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 4096,
}

// Frame is one message on the feed.
type Frame struct {
	Quotes []domain.Quote `json:"quotes"`
	At     time.Time      `json:"at"`
}

// Streamer pushes quote frames to websocket clients. Each connection gets its
// own walk so clients never share state.
type Streamer struct {
	interval time.Duration
	quotes   func() []domain.Quote
	seed     uint64
	log      zerolog.Logger
}

// NewStreamer returns a streamer whose walks start from quotes(). A zero
// interval uses DefaultInterval.
func NewStreamer(quotes func() []domain.Quote, interval time.Duration, seed uint64, log zerolog.Logger) *Streamer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Streamer{interval: interval, quotes: quotes, seed: seed, log: log}
}

// Upgrade switches the request to the websocket protocol and streams frames
// until the client goes away or ctx ends.
func (s *Streamer) Upgrade(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	return s.Serve(ctx, conn)
}

// Serve streams frames on conn and closes it before returning.
func (s *Streamer) Serve(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	closed := make(chan struct{})
	go readPump(conn, closed)

	walker := NewWalker(s.quotes(), s.seed)
	if err := writeFrame(conn, walker.Snapshot()); err != nil {
		return err
	}

	frames := time.NewTicker(s.interval)
	defer frames.Stop()
	pings := time.NewTicker(pingPeriod)
	defer pings.Stop()

	for {
		select {
		case <-frames.C:
			if err := writeFrame(conn, walker.Step()); err != nil {
				return err
			}
		case <-pings.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-closed:
			s.log.Debug().Msg("feed client disconnected")
			return nil
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil
		}
	}
}

func writeFrame(conn *websocket.Conn, quotes []domain.Quote) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(Frame{Quotes: quotes, At: time.Now().UTC()})
}

// readPump discards client messages and closes done once the connection
// fails or the client closes it.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
