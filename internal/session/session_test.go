package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	data, err := b.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for unknown token, got %+v", data)
	}

	created := &Data{CreatedAt: time.Now()}
	if err := b.Set(ctx, "tok", created, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err = b.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data == nil || !data.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Get returned %+v", data)
	}

	if err := b.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	data, err = b.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("token survived delete")
	}
}

func TestMemoryBackendExpiry(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	if err := b.Set(ctx, "tok", &Data{CreatedAt: time.Now()}, -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := b.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("expired session returned")
	}
}

func TestStoreCookieRoundTrip(t *testing.T) {
	s := NewStore(NewMemoryBackend(), false)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	token, err := s.Create(ctx, rec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(token) != idLength*2 {
		t.Errorf("token length: got %d, want %d hex chars", len(token), idLength*2)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly || cookie.Path != "/" {
		t.Errorf("cookie attributes: %+v", cookie)
	}

	// Session resolves from the cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	data, err := s.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data == nil {
		t.Fatal("session not found via cookie")
	}

	// And from a Bearer header for non-browser clients.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	data, err = s.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data == nil {
		t.Fatal("session not found via Bearer token")
	}

	// Destroy removes the session and expires the cookie.
	rec = httptest.NewRecorder()
	if err := s.Destroy(ctx, rec, req); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	data, err = s.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("session survived destroy")
	}

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge != -1 {
		t.Errorf("destroy did not expire the cookie: %+v", cleared)
	}
}

func TestGetWithoutToken(t *testing.T) {
	s := NewStore(NewMemoryBackend(), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	data, err := s.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil without a token, got %+v", data)
	}
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := generateToken()
		if err != nil {
			t.Fatalf("generateToken: %v", err)
		}
		if seen[tok] {
			t.Fatal("duplicate token generated")
		}
		seen[tok] = true
	}
}
