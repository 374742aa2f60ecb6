// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/taibuivan/somalitag/internal/platform/ctxutil"
)

// Store is a durable key-value store for preferences.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// ErrNoVisitor is returned when a visitor-keyed store is written without a visitor id.
var ErrNoVisitor = errors.New("preference: no visitor id in context")

// Backend opens the store of the visitor behind a request.
type Backend interface {
	Name() string
	Open(writer http.ResponseWriter, request *http.Request) Store
}

// # Memory Store

// memoryVisitorLimit bounds how many visitors a [MemoryBackend] remembers.
const memoryVisitorLimit = 10_000

// MemoryBackend keeps one [MemoryStore] per anonymous visitor in process memory.
//
// Preferences are lost on restart and are not shared between instances. When
// the visitor limit is reached every stored preference is dropped.
type MemoryBackend struct {
	mu     sync.Mutex
	stores map[string]*MemoryStore
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{stores: make(map[string]*MemoryStore)}
}

func (b *MemoryBackend) Name() string { return "memory" }

func (b *MemoryBackend) Open(_ http.ResponseWriter, request *http.Request) Store {
	visitor := ctxutil.GetVisitorID(request.Context())
	if visitor == "" {
		return anonymousStore{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	store, found := b.stores[visitor]
	if !found {
		if len(b.stores) >= memoryVisitorLimit {
			clear(b.stores)
		}
		store = NewMemoryStore()
		b.stores[visitor] = store
	}
	return store
}

// anonymousStore serves requests without a visitor id: reads find nothing, writes fail.
type anonymousStore struct{}

func (anonymousStore) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (anonymousStore) Set(context.Context, string, string) error       { return ErrNoVisitor }

// MemoryStore keeps preferences in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]
	return value, found, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// # Cookie Store

// CookieBackend keeps each preference in its own long-lived cookie.
type CookieBackend struct {
	TTL    time.Duration
	Secure bool
}

func (b CookieBackend) Name() string { return "cookie" }

func (b CookieBackend) Open(writer http.ResponseWriter, request *http.Request) Store {
	return &CookieStore{
		writer:  writer,
		request: request,
		ttl:     b.TTL,
		secure:  b.Secure,
		written: make(map[string]string),
	}
}

// CookieStore reads preferences from request cookies and writes Set-Cookie headers.
//
// Values written during the request are visible to later reads of the same request.
type CookieStore struct {
	writer  http.ResponseWriter
	request *http.Request
	ttl     time.Duration
	secure  bool
	written map[string]string
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if value, found := s.written[key]; found {
		return value, true, nil
	}

	cookie, err := s.request.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return cookie.Value, true, nil
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	http.SetCookie(s.writer, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.written[key] = value
	return nil
}
