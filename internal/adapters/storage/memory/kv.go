package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawlog/internal/ports/kv"
)

var ErrClosed = errors.New("kv store closed")

// KV es el driver en memoria; lo usan los tests y el modo sin disco.
type KV struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
	fail   error
}

var _ kv.Store = (*KV)(nil)

func NewKV() *KV {
	return &KV{data: make(map[string]string)}
}

// FailWrites hace que toda escritura posterior devuelva err (nil lo desactiva).
// Sirve para simular un almacén lleno o roto en tests.
func (s *KV) FailWrites(err error) {
	s.mu.Lock()
	s.fail = err
	s.mu.Unlock()
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writableLocked(key); err != nil {
		return err
	}
	s.data[key] = value
	return nil
}

func (s *KV) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writableLocked(key); err != nil {
		return err
	}
	delete(s.data, key)
	return nil
}

func (s *KV) SetMany(ctx context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range values {
		if err := s.writableLocked(k); err != nil {
			return err
		}
	}
	for k, v := range values {
		s.data[k] = v
	}
	return nil
}

func (s *KV) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *KV) writableLocked(key string) error {
	if s.closed {
		return ErrClosed
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}
	return s.fail
}
