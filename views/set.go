package views

import (
	"context"
	"net/http"
	"sync"

	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
)

// Store is the read side of the chat data the views display.
type Store interface {
	GetSessions(id types.Identity, limit int) ([]types.Session, error)
	GetMessages(id types.Identity, sessionID string) ([]types.Message, error)
	GetTasks(id types.Identity, limit int) ([]types.Task, error)
	GetSessionMetrics(id types.Identity, sessionID string) (types.SessionMetrics, bool, error)
}

// IdentityFunc resolves the caller of a request.
type IdentityFunc func(r *http.Request) (types.Identity, error)

type Deps struct {
	Store    Store
	Identify IdentityFunc
	Links    []types.NavLink
}

// Set is every view the application routes to, built once at startup.
type Set struct {
	Login     View
	SignUp    View
	Dashboard View
	Chat      View
	Sidebar   View
}

func NewSet(deps Deps) Set {
	return Set{
		Login:     newLoginView(),
		SignUp:    newSignUpView(),
		Dashboard: newDashboardView(deps),
		Chat:      newChatView(deps),
		Sidebar:   newSidebarView(deps),
	}
}

type requestCacheKey struct{}

// requestCache lets the views composed into one page share the caller's
// identity and session list instead of resolving them once per view.
type requestCache struct {
	identityOnce sync.Once
	identity     types.Identity

	sessionsOnce sync.Once
	sessions     []types.Session
	sessionsErr  error
}

// WithRequestCache returns r carrying an empty per-request cache. Calling
// it on a request that already has one is a no-op.
func WithRequestCache(r *http.Request) *http.Request {
	if _, ok := r.Context().Value(requestCacheKey{}).(*requestCache); ok {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), requestCacheKey{}, &requestCache{}))
}

func cacheFrom(r *http.Request) *requestCache {
	c, _ := r.Context().Value(requestCacheKey{}).(*requestCache)
	return c
}

// identity returns the caller, or the anonymous identity when none can be
// resolved. Views render an empty state for anonymous callers.
func (d Deps) identity(r *http.Request) types.Identity {
	c := cacheFrom(r)
	if c == nil {
		return d.resolveIdentity(r)
	}
	c.identityOnce.Do(func() {
		c.identity = d.resolveIdentity(r)
	})
	return c.identity
}

func (d Deps) resolveIdentity(r *http.Request) types.Identity {
	if d.Identify == nil {
		return types.Identity{}
	}
	id, err := d.Identify(r)
	if err != nil {
		config.Logger.Debug("Rendering anonymously:", err)
		return types.Identity{}
	}
	return id
}

// sessions returns all of the caller's sessions, newest first.
func (d Deps) sessions(r *http.Request, id types.Identity) ([]types.Session, error) {
	c := cacheFrom(r)
	if c == nil {
		return d.Store.GetSessions(id, 0)
	}
	c.sessionsOnce.Do(func() {
		c.sessions, c.sessionsErr = d.Store.GetSessions(id, 0)
	})
	return c.sessions, c.sessionsErr
}
