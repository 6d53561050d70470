// Package catalog is the redis-backed listing store shared by the match
// and filter endpoints. Listings are stored as JSON blobs keyed by ID
// with a set index for enumeration.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"saksham-engine/internal/config"
	"saksham-engine/internal/logging"
	"saksham-engine/pkg/models"
)

const (
	listingKeyPrefix = "catalog:internship:"
	indexKey         = "catalog:ids"
)

// Store wraps the redis client with catalog operations.
type Store struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewStore creates a new catalog store instance
func NewStore(cfg *config.Config) *Store {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &Store{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// NewStoreWithClient wires an existing client; used by tests.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{
		client: client,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// IsHealthy checks if redis is connected and healthy
func (s *Store) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}

// Upsert inserts or replaces listings in one pipelined round trip.
func (s *Store) Upsert(ctx context.Context, internships []models.Internship) error {
	if len(internships) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, in := range internships {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal internship %s: %w", in.ID, err)
		}
		pipe.Set(ctx, listingKeyPrefix+in.ID, data, 0)
		pipe.SAdd(ctx, indexKey, in.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert listings: %w", err)
	}

	s.logger.Info("Catalog updated", map[string]interface{}{
		"count": len(internships),
	})
	return nil
}

// Get fetches a single listing by ID.
func (s *Store) Get(ctx context.Context, id string) (*models.Internship, error) {
	data, err := s.client.Get(ctx, listingKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("internship %s not found", id)
		}
		return nil, fmt.Errorf("failed to get internship %s: %w", id, err)
	}

	var in models.Internship
	if err := json.Unmarshal([]byte(data), &in); err != nil {
		return nil, fmt.Errorf("failed to unmarshal internship %s: %w", id, err)
	}
	return &in, nil
}

// List returns every listing in the catalog. Index entries whose blob
// has gone missing are skipped rather than failing the whole read.
func (s *Store) List(ctx context.Context) ([]models.Internship, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog index: %w", err)
	}
	if len(ids) == 0 {
		return []models.Internship{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = listingKeyPrefix + id
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog entries: %w", err)
	}

	internships := make([]models.Internship, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			s.logger.Warn("Catalog entry missing for indexed id", map[string]interface{}{
				"id": ids[i],
			})
			continue
		}
		var in models.Internship
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			s.logger.Warn("Skipping unparseable catalog entry", map[string]interface{}{
				"id":    ids[i],
				"error": err.Error(),
			})
			continue
		}
		internships = append(internships, in)
	}

	return internships, nil
}

// Remove deletes a listing and its index entry.
func (s *Store) Remove(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, listingKeyPrefix+id)
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove internship %s: %w", id, err)
	}
	return nil
}

// Count returns the number of listings in the catalog.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, indexKey).Result()
}
