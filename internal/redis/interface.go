package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface repositories use: plain commands plus
// WATCH transactions and SCAN. miniredis-backed clients satisfy it in tests.
type Client interface {
	redis.UniversalClient
}
