// Package transactions implements the ledger resource: CRUD over dated
// monetary entries, with a Redis read cache in front of the list query.
package transactions

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ledger/internal/cache"
)

// listCacheKey holds the serialized full ledger listing
const listCacheKey = "transactions:all"

// listCacheTTL bounds staleness if an invalidation is ever missed
const listCacheTTL = 2 * time.Minute

// Store defines the persistence operations the service needs
type Store interface {
	List(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, req TransactionRequest) (*Transaction, error)
	Update(ctx context.Context, id int64, req TransactionRequest) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Service defines the ledger service interface
type Service interface {
	List(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, req TransactionRequest) (*Transaction, error)
	Update(ctx context.Context, id int64, req TransactionRequest) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// service wraps the repository with cache-aside reads. Every cache failure is
// logged and absorbed; the database remains the source of truth.
type service struct {
	store Store
	cache cache.Store
}

// NewService creates a new ledger service. The cache may be nil, in which
// case every read goes to the database.
func NewService(store Store, cacheStore cache.Store) Service {
	return &service{
		store: store,
		cache: cacheStore,
	}
}

// List returns all ledger entries, serving from cache when warm
func (s *service) List(ctx context.Context) ([]Transaction, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, listCacheKey); err == nil {
			var entries []Transaction
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, string(data), listCacheTTL); err != nil {
				slog.Warn("Failed to cache transaction list", "error", err)
			}
		}
	}

	return entries, nil
}

// Create inserts a new entry and invalidates the list cache
func (s *service) Create(ctx context.Context, req TransactionRequest) (*Transaction, error) {
	t, err := s.store.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return t, nil
}

// Update replaces an entry and invalidates the list cache
func (s *service) Update(ctx context.Context, id int64, req TransactionRequest) (*Transaction, error) {
	t, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return t, nil
}

// Delete removes an entry and invalidates the list cache
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *service) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		slog.Warn("Failed to invalidate transaction list cache", "error", err)
	}
}
