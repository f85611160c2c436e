package lending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/libraryapp/lending/book"
	"github.com/redis/go-redis/v9"
)

/* StatsCache decorates a UseCase with a Redis-backed cache for the book
 * statistics query. Statistics only change when a book is registered, so
 * SaveBook invalidates the key; everything else passes straight through.
 */

const statsKey = "lending:stats"

type StatsCache struct {
	UseCase
	Client *redis.Client
	TTL    time.Duration
}

// NewStatsCache connects to Redis and wraps the given UseCase.
func NewStatsCache(next UseCase, addr, password string, db int, ttl time.Duration) (*StatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &StatsCache{
		UseCase: next,
		Client:  client,
		TTL:     ttl,
	}, nil
}

// SaveBook registers the book and drops the cached statistics.
func (c *StatsCache) SaveBook(ctx context.Context, name string, category book.Category) (book.Book, error) {
	b, err := c.UseCase.SaveBook(ctx, name, category)
	if err != nil {
		return book.Book{}, err
	}

	if err := c.Client.Del(ctx, statsKey).Err(); err != nil {
		return book.Book{}, fmt.Errorf("invalidating cached statistics: %w", err)
	}

	return b, nil
}

// BookStatistics serves the cached statistics when present and fills the
// cache on a miss.
func (c *StatsCache) BookStatistics(ctx context.Context) ([]BookStat, error) {
	cached, err := c.Client.Get(ctx, statsKey).Bytes()
	if err == nil {
		var stats []BookStat
		if err := json.Unmarshal(cached, &stats); err != nil {
			return nil, fmt.Errorf("decoding cached statistics: %w", err)
		}
		return stats, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("reading cached statistics: %w", err)
	}

	stats, err := c.UseCase.BookStatistics(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("encoding statistics: %w", err)
	}

	if err := c.Client.Set(ctx, statsKey, encoded, c.TTL).Err(); err != nil {
		return nil, fmt.Errorf("caching statistics: %w", err)
	}

	return stats, nil
}

// Close releases the Redis connection.
func (c *StatsCache) Close() error {
	return c.Client.Close()
}
