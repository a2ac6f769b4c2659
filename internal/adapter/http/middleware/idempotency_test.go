package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.data[key]; ok {
		return true, existing, nil
	}

	if response != nil {
		s.data[key] = response
	} else {
		s.data[key] = []byte(inFlightMarker)
	}

	return false, nil, nil
}

func (s *memoryStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = response

	return nil
}

func TestIdempotencyMiddleware_ReplaysStoredResponse(t *testing.T) {
	store := newMemoryStore()
	calls := 0

	wrapped := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"transfer_id":"tr-1"}`))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader("{}"))
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		if !strings.Contains(rec.Body.String(), "tr-1") {
			t.Fatalf("request %d: unexpected body %s", i, rec.Body.String())
		}

		if i == 1 && rec.Header().Get("X-Idempotency-Replay") != "true" {
			t.Fatal("expected replay header on second request")
		}
	}

	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
}

func TestIdempotencyMiddleware_FailedResponseNotReplayed(t *testing.T) {
	store := newMemoryStore()
	calls := 0

	wrapped := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"insufficient funds"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-2")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	// The key still holds the in-flight marker, not the error body.
	if string(store.data["key-2"]) != inFlightMarker {
		t.Fatalf("expected in-flight marker, got %s", store.data["key-2"])
	}
}

func TestIdempotencyMiddleware_SkipsReadsAndMissingKey(t *testing.T) {
	store := newMemoryStore()
	calls := 0

	wrapped := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	getReq := httptest.NewRequest(http.MethodGet, "/accounts/acc-1", nil)
	getReq.Header.Set(IdempotencyKeyHeader, "key-3")
	wrapped.ServeHTTP(httptest.NewRecorder(), getReq)

	postReq := httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader("{}"))
	wrapped.ServeHTTP(httptest.NewRecorder(), postReq)

	if calls != 2 {
		t.Fatalf("expected both requests to pass through, got %d calls", calls)
	}

	if len(store.data) != 0 {
		t.Fatalf("expected no keys stored, got %d", len(store.data))
	}
}
