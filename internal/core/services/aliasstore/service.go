package aliasstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"go.uber.org/zap"
)

/*
service wraps a durable backend with the alias table's contract: lazy
idempotent open, trimmed non-empty records, reads that fail open and writes
that fail closed. Backend errors never cross this boundary as their own type;
writes surface them as alias.ErrStorageUnavailable.
*/
type service struct {
	backend ports.AliasBackend
	logger  *zap.Logger

	mu     sync.Mutex // serialises first-use Open
	opened atomic.Bool
}

// NewService creates a new alias store over the given backend.
// It panics if the backend is nil. A nil logger disables logging.
func NewService(backend ports.AliasBackend, logger *zap.Logger) ports.AliasStore {
	if backend == nil {
		panic("backend cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{backend: backend, logger: logger.Named("aliasstore")}
}

// Open acquires the backend once per process. A failed attempt is not
// remembered, so the next call tries again.
func (s *service) Open(ctx context.Context) error {
	if s.opened.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opened.Load() {
		return nil
	}

	if err := s.backend.Open(ctx); err != nil {
		return unavailable("open alias storage", err)
	}
	s.opened.Store(true)
	s.logger.Debug("alias storage opened")
	return nil
}

// Set upserts a trimmed record. Empty values are rejected before the backend is touched.
func (s *service) Set(ctx context.Context, name, destination string) error {
	record := alias.Alias{Name: name, Destination: destination}.Normalize()
	if !record.Valid() {
		return fmt.Errorf("set alias %q: %w", name, alias.ErrInvalidArgument)
	}
	if err := s.Open(ctx); err != nil {
		return err
	}
	if err := s.backend.Put(ctx, record); err != nil {
		return unavailable(fmt.Sprintf("set alias %q", record.Name), err)
	}
	s.logger.Debug("alias set", zap.String("alias", record.Name), zap.String("destination", record.Destination))
	return nil
}

// Get returns the destination for an exact alias match. Backend failures read as "not found".
func (s *service) Get(ctx context.Context, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if err := s.Open(ctx); err != nil {
		s.logger.Warn("alias lookup skipped", zap.String("alias", name), zap.Error(err))
		return "", false
	}
	destination, found, err := s.backend.Get(ctx, name)
	if err != nil {
		s.logger.Warn("alias lookup failed", zap.String("alias", name), zap.Error(err))
		return "", false
	}
	return destination, found
}

// GetAll returns the full mapping. It never fails; on backend error the map is empty.
func (s *service) GetAll(ctx context.Context) map[string]string {
	records := s.List(ctx)
	all := make(map[string]string, len(records))
	for _, r := range records {
		all[r.Name] = r.Destination
	}
	return all
}

// List returns every record in backend order, or nil on backend error.
func (s *service) List(ctx context.Context) []alias.Alias {
	if err := s.Open(ctx); err != nil {
		s.logger.Warn("alias listing skipped", zap.Error(err))
		return nil
	}
	records, err := s.backend.GetAll(ctx)
	if err != nil {
		s.logger.Warn("alias listing failed", zap.Error(err))
		return nil
	}
	return records
}

// Remove deletes an alias. Removing an absent alias succeeds.
func (s *service) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if err := s.Open(ctx); err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, name); err != nil {
		return unavailable(fmt.Sprintf("remove alias %q", name), err)
	}
	s.logger.Debug("alias removed", zap.String("alias", name))
	return nil
}

// Clear deletes every alias.
func (s *service) Clear(ctx context.Context) error {
	if err := s.Open(ctx); err != nil {
		return err
	}
	if err := s.backend.Clear(ctx); err != nil {
		return unavailable("clear aliases", err)
	}
	s.logger.Debug("aliases cleared")
	return nil
}

// unavailable wraps the sentinel and flattens the backend error to text.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %s", op, alias.ErrStorageUnavailable, err.Error())
}
