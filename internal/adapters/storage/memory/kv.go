package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-care-scheduler/internal/ports/storage"
)

var (
	ErrSessionRequired = errors.New("session id required")
)

// Options del backend en memoria. TTL > 0 vence las sesiones sin escrituras
// durante ese tiempo, igual que el backend redis.
type Options struct {
	TTL time.Duration
	Now func() time.Time
}

type kv struct {
	mu        sync.RWMutex
	bySession map[string]map[string]string
	touched   map[string]time.Time

	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewKV() storage.KV {
	return NewKVWithOptions(Options{})
}

func NewKVWithOptions(opts Options) storage.KV {
	s := &kv{
		bySession: make(map[string]map[string]string),
		touched:   make(map[string]time.Time),
		ttl:       opts.TTL,
		now:       opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *kv) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", false, ErrSessionRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.expired(sessionID, s.now()) {
		return "", false, nil
	}
	v, ok := s.bySession[sessionID][key]
	return v, ok, nil
}

func (s *kv) Set(ctx context.Context, sessionID, key, value string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	m, ok := s.bySession[sessionID]
	if !ok || s.expired(sessionID, now) {
		m = make(map[string]string)
		s.bySession[sessionID] = m
	}
	m[key] = value
	s.touched[sessionID] = now
	return nil
}

func (s *kv) Remove(ctx context.Context, sessionID, key string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bySession[sessionID], key)
	return nil
}

func (s *kv) Clear(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bySession, sessionID)
	delete(s.touched, sessionID)
	return nil
}

// expired requiere s.mu tomado (lectura o escritura).
func (s *kv) expired(sessionID string, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	t, ok := s.touched[sessionID]
	return ok && now.Sub(t) >= s.ttl
}

// sweep borra las sesiones vencidas, como mucho una vez por TTL.
// Requiere s.mu tomado para escritura.
func (s *kv) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now
	for id := range s.touched {
		if s.expired(id, now) {
			delete(s.bySession, id)
			delete(s.touched, id)
		}
	}
}

// sessions cuenta las sesiones guardadas (tests).
func (s *kv) sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bySession)
}
