package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/models"
)

var ErrNoSession = errors.New("no active session")

// Manager is the single read/write boundary for authentication state.
// Login and registration create a session, Current rehydrates it on every
// request, Logout destroys it.
type Manager struct {
	cms   *cms.Client
	store Store
	ttl   time.Duration
}

func NewManager(client *cms.Client, store Store, ttl time.Duration) *Manager {
	return &Manager{cms: client, store: store, ttl: ttl}
}

// Login exchanges credentials with the backend and persists the token under
// a fresh session id. Callers inspect the returned account status to decide
// whether the session may stand.
func (m *Manager) Login(identifier, password string) (string, *models.AuthResponse, error) {
	auth, err := m.cms.Login(identifier, password)
	if err != nil {
		return "", nil, err
	}
	id, err := m.persist(auth.JWT)
	if err != nil {
		return "", nil, err
	}
	return id, auth, nil
}

// Register runs the backend's two-step registration and establishes a
// session for the freshly created (pending) account.
func (m *Manager) Register(in cms.RegisterInput) (string, *models.AuthResponse, error) {
	auth, err := m.cms.Register(in)
	if err != nil {
		return "", nil, err
	}
	id, err := m.persist(auth.JWT)
	if err != nil {
		return "", nil, err
	}
	return id, auth, nil
}

// Logout clears the persisted token. The backend token itself stays valid
// until its own expiry; only this side forgets it.
func (m *Manager) Logout(id string) {
	if id != "" {
		m.store.Delete(id)
	}
}

// Current rehydrates the session: the stored token is traded for a fresh
// profile fetch. A token the backend no longer accepts clears the session.
func (m *Manager) Current(id string) (*models.User, string, error) {
	token, ok := m.store.Get(id)
	if !ok {
		return nil, "", ErrNoSession
	}
	user, err := m.cms.CurrentUser(token)
	if err != nil {
		m.store.Delete(id)
		return nil, "", err
	}
	return user, token, nil
}

func (m *Manager) persist(token string) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	m.store.Set(id, token, m.tokenTTL(token))
	return id, nil
}

// tokenTTL bounds the session by the token's own exp claim when one can be
// read. The token is issued and verified by the backend; only the expiry is
// needed here, so the signature is left unchecked.
func (m *Manager) tokenTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			if d := time.Until(time.Unix(int64(exp), 0)); d > 0 && d < m.ttl {
				return d
			}
		}
	}
	return m.ttl
}

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
