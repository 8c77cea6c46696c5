// Package directus fetches hotel configuration records from the
// surrounding content system. The booking core never imports it; the
// composition root uses it to feed HotelConfig values into the façade.
package directus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"innflow/models"
)

// Client is a read-only client for the content system's hotel
// collection, with a redis-backed cache in front of it.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewClient(baseURL, token string, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

func hotelCacheKey(hotelID string) string { return "hotel:config:" + hotelID }

// HotelByID returns one hotel record with its room list, serving from
// cache when possible. A cache failure is logged and treated as a miss.
func (c *Client) HotelByID(ctx context.Context, hotelID string) (*models.HotelConfig, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("hotel ID is required")
	}

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, hotelCacheKey(hotelID)).Result()
		if err == nil {
			var hotel models.HotelConfig
			if err := json.Unmarshal([]byte(cached), &hotel); err == nil {
				return &hotel, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("directus: hotel cache read failed", zap.Error(err))
		}
	}

	hotel, err := c.fetchHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if payload, err := json.Marshal(hotel); err == nil {
			if err := c.cache.Set(ctx, hotelCacheKey(hotelID), payload, c.cacheTTL).Err(); err != nil {
				c.logger.Warn("directus: hotel cache write failed", zap.Error(err))
			}
		}
	}
	return hotel, nil
}

func (c *Client) fetchHotel(ctx context.Context, hotelID string) (*models.HotelConfig, error) {
	target := fmt.Sprintf("%s/items/hotels/%s?fields=*,rooms.*", c.baseURL, hotelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("directus: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directus: hotel fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("directus: failed to read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("directus: hotel %q not found", hotelID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("directus: HTTP %d fetching hotel %q", resp.StatusCode, hotelID)
	}

	var wrapper struct {
		Data models.HotelConfig `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("directus: malformed hotel record: %w", err)
	}
	if wrapper.Data.ID == "" {
		wrapper.Data.ID = hotelID
	}
	return &wrapper.Data, nil
}

// InvalidateHotel drops the cached record after an editor updates it.
func (c *Client) InvalidateHotel(ctx context.Context, hotelID string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Del(ctx, hotelCacheKey(hotelID)).Err(); err != nil {
		c.logger.Warn("directus: hotel cache invalidation failed", zap.Error(err))
	}
}
