// Package session provides token-backed admin session management. Sessions
// are identified by a secure cookie (or Bearer token) and stored with a TTL
// in Redis when one is configured, or in-process otherwise.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "fp_session"

	// DefaultTTL is how long a session lives before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Data holds the session payload for a logged-in admin.
type Data struct {
	CreatedAt time.Time `json:"created_at"`
}

// Backend persists session payloads with expiry.
type Backend interface {
	Set(ctx context.Context, token string, data *Data, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Data, error)
	Delete(ctx context.Context, token string) error
}

// Store manages session lifecycle on top of a Backend.
type Store struct {
	backend Backend
	ttl     time.Duration
	secure  bool
}

// NewStore creates a session store. When secure is true, session cookies
// are marked HTTPS-only.
func NewStore(backend Backend, secure bool) *Store {
	return &Store{
		backend: backend,
		ttl:     DefaultTTL,
		secure:  secure,
	}
}

// Create generates a new session, stores it, and sets the session cookie on
// the response. Returns the session token so API clients can also send it
// as a Bearer token.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data := &Data{CreatedAt: time.Now()}
	if err := s.backend.Set(ctx, token, data, s.ttl); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return token, nil
}

// Get retrieves session data using the token from the request. Returns nil
// if no valid session exists.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	token := tokenFromRequest(r)
	if token == "" {
		return nil, nil
	}
	return s.backend.Get(ctx, token)
}

// Destroy removes the session and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token := tokenFromRequest(r)
	if token == "" {
		return nil
	}

	if err := s.backend.Delete(ctx, token); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

// tokenFromRequest reads the session token from the cookie, falling back
// to an Authorization: Bearer header for non-browser clients.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// generateToken returns a cryptographically random hex session ID.
func generateToken() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
