package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
)

// DefaultLoginDelay mimics the round trip of a real sign-in.
const DefaultLoginDelay = 2 * time.Second

// LoginFlow completes a validated login after a fixed delay. The pending
// login is tied to the caller's context: if it ends first, nothing is written.
type LoginFlow struct {
	delay time.Duration
	log   zerolog.Logger
}

func NewLoginFlow(delay time.Duration, log zerolog.Logger) *LoginFlow {
	if delay < 0 {
		delay = 0
	}
	return &LoginFlow{delay: delay, log: log}
}

// Submit blocks until the login has been applied to session or ctx is done.
func (f *LoginFlow) Submit(ctx context.Context, session *SessionStore, identity *domain.Identity, role domain.Role) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("login abandoned: %w", err)
	}

	var loginErr error
	d := Defer(f.delay, func() {
		// Once started, the write is not interrupted by the caller leaving.
		loginErr = session.Login(context.WithoutCancel(ctx), identity, role)
	})
	stop := context.AfterFunc(ctx, func() { d.Cancel() })
	defer stop()

	<-d.Done()
	if !d.Fired() {
		f.log.Debug().Str("role", string(role)).Msg("pending login discarded")
		return fmt.Errorf("login abandoned: %w", ctx.Err())
	}
	return loginErr
}
