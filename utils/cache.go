package utils

import (
	"sync"

	"github.com/go-redis/redis/v8"

	"housemate/config"
)

var (
	draftCacheClient *redis.Client
	authCacheClient  *redis.Client
	cacheOnce        sync.Once
)

func initCacheClients() {
	draftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	authCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
}

// GetDraftCacheClient returns the redis client used for booking draft sessions.
func GetDraftCacheClient() *redis.Client {
	cacheOnce.Do(initCacheClients)
	return draftCacheClient
}

// GetAuthCacheClient returns the redis client used for token caching.
func GetAuthCacheClient() *redis.Client {
	cacheOnce.Do(initCacheClients)
	return authCacheClient
}
