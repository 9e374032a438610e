package httpapi

import (
	"context"

	"github.com/rs/zerolog"

	"careersite-engine/internal/auth"
	"careersite-engine/internal/events"
	"careersite-engine/internal/store"
)

// Deps holds everything the handlers need, injected so tests can swap in
// fakes for the store and a no-op hub.
type Deps struct {
	DB  store.Querier
	Hub *events.Hub
	Log zerolog.Logger

	Tokens       *auth.Tokens
	LoginLimiter *auth.LoginLimiter
	CookieSecure bool

	// Reorder applies a transactional section reorder. Injected because it
	// needs the real pool; tests stub it.
	Reorder func(ctx context.Context, companyID string, ids []string) error
}
