package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const cacheTTL = 30 * time.Minute

// MediaRedisCache keeps recently served venue image URL lists in Redis so
// listing pages do not hit Mongo for every thumbnail request.
type MediaRedisCache struct {
	cli    *redis.Client
	tracer trace.Tracer
}

func NewMediaRedisCache(client *redis.Client, tracer trace.Tracer) *MediaRedisCache {
	return &MediaRedisCache{
		cli:    client,
		tracer: tracer,
	}
}

// Check connection function
func (mc *MediaRedisCache) Ping() {
	val, _ := mc.cli.Ping().Result()
	fmt.Println(val)
}

func (mc *MediaRedisCache) Post(ctx context.Context, venueID string, urls []string) error {
	ctx, span := mc.tracer.Start(ctx, "MediaRedisCache.Post")
	defer span.End()

	value, err := json.Marshal(urls)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = mc.cli.Set(constructKey(venueID), value, cacheTTL).Err()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (mc *MediaRedisCache) Get(ctx context.Context, venueID string) ([]string, error) {
	ctx, span := mc.tracer.Start(ctx, "MediaRedisCache.Get")
	defer span.End()

	value, err := mc.cli.Get(constructKey(venueID)).Bytes()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var urls []string
	if err := json.Unmarshal(value, &urls); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return urls, nil
}

func constructKey(venueID string) string {
	return fmt.Sprintf("venue_images:%s", venueID)
}
