package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const liveFlightKeyPrefix = "liveflight:"

// LiveFlightRecord is one live telemetry record in the ephemeral
// registry. The record lives only as long as its Redis TTL; nothing
// outside the registry may assume it persists.
type LiveFlightRecord struct {
	PilotID        string    `json:"pilot_id"`
	Callsign       string    `json:"callsign"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AltitudeFt     int       `json:"altitude_ft"`
	Heading        float64   `json:"heading"`
	GroundSpeedKts int       `json:"ground_speed_kts"`
	Status         string    `json:"status"`
	DepartureICAO  string    `json:"departure_icao,omitempty"`
	ArrivalICAO    string    `json:"arrival_icao,omitempty"`
	LastUpdate     time.Time `json:"last_update"`
}

// RedisFlightStore keeps live flight records in Redis, one key per
// pilot, expiry delegated to the storage engine.
type RedisFlightStore struct {
	client *redis.Client
}

// NewRedisFlightStore creates a Redis-backed live flight store
func NewRedisFlightStore(client *redis.Client) *RedisFlightStore {
	return &RedisFlightStore{client: client}
}

// Upsert writes the record and resets its TTL in a single SET
func (s *RedisFlightStore) Upsert(ctx context.Context, rec *LiveFlightRecord, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal live flight record: %w", err)
	}

	key := liveFlightKeyPrefix + rec.PilotID
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to upsert live flight: %w", err)
	}
	return nil
}

// Get returns the pilot's live record, or nil when absent or expired
func (s *RedisFlightStore) Get(ctx context.Context, pilotID string) (*LiveFlightRecord, error) {
	data, err := s.client.Get(ctx, liveFlightKeyPrefix+pilotID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read live flight: %w", err)
	}

	var rec LiveFlightRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode live flight record: %w", err)
	}
	return &rec, nil
}

// List scans the registry and returns every unexpired record
func (s *RedisFlightStore) List(ctx context.Context) ([]LiveFlightRecord, error) {
	var records []LiveFlightRecord

	iter := s.client.Scan(ctx, 0, liveFlightKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			// Expired between scan and read
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read live flight: %w", err)
		}

		var rec LiveFlightRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan live flights: %w", err)
	}

	return records, nil
}

// Remove deletes the pilot's record ahead of its TTL
func (s *RedisFlightStore) Remove(ctx context.Context, pilotID string) error {
	return s.client.Del(ctx, liveFlightKeyPrefix+pilotID).Err()
}

// MemoryFlightStore is the in-process fallback registry, used when no
// Redis is configured. Expiry is handled per item by go-cache.
type MemoryFlightStore struct {
	cache *gocache.Cache
}

// NewMemoryFlightStore creates an in-process live flight store
func NewMemoryFlightStore(cleanupInterval time.Duration) *MemoryFlightStore {
	return &MemoryFlightStore{cache: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (s *MemoryFlightStore) Upsert(ctx context.Context, rec *LiveFlightRecord, ttl time.Duration) error {
	clone := *rec
	s.cache.Set(rec.PilotID, &clone, ttl)
	return nil
}

func (s *MemoryFlightStore) Get(ctx context.Context, pilotID string) (*LiveFlightRecord, error) {
	item, found := s.cache.Get(pilotID)
	if !found {
		return nil, nil
	}
	rec := *item.(*LiveFlightRecord)
	return &rec, nil
}

func (s *MemoryFlightStore) List(ctx context.Context) ([]LiveFlightRecord, error) {
	items := s.cache.Items()
	records := make([]LiveFlightRecord, 0, len(items))
	for _, item := range items {
		records = append(records, *item.Object.(*LiveFlightRecord))
	}
	return records, nil
}

func (s *MemoryFlightStore) Remove(ctx context.Context, pilotID string) error {
	s.cache.Delete(pilotID)
	return nil
}
