// Package roles answers "is this user an administrator" once per session
// instead of once per page.
package roles

import (
	"log"
	"time"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/session"
)

// Resolver classifies admin capability from the heterogeneous role shapes
// the backend returns, caching the verdict per bearer token.
type Resolver struct {
	cms   *cms.Client
	cache session.Store
	ttl   time.Duration
}

func New(client *cms.Client, cache session.Store, ttl time.Duration) *Resolver {
	return &Resolver{cms: client, cache: cache, ttl: ttl}
}

// IsAdmin reports whether the user carries an admin-like role. Role strings
// already on the user object are checked first; when none are present a
// role-populated profile fetch fills the gap. Any failure resolves to
// non-admin rather than raising.
func (r *Resolver) IsAdmin(user *models.User, token string) bool {
	if user == nil || token == "" {
		return false
	}
	if cached, ok := r.cache.Get(token); ok {
		return cached == "admin"
	}

	verdict := models.IsAdminRole(user.RoleStrings())
	if !verdict {
		full, err := r.cms.CurrentUserWithRole(token)
		if err != nil {
			log.Printf("Role lookup failed for user %d: %v", user.ID, err)
		} else {
			verdict = models.IsAdminRole(full.RoleStrings())
		}
	}

	cached := "none"
	if verdict {
		cached = "admin"
	}
	r.cache.Set(token, cached, r.ttl)
	return verdict
}

// Forget drops a cached verdict, used when a session ends.
func (r *Resolver) Forget(token string) {
	if token != "" {
		r.cache.Delete(token)
	}
}
