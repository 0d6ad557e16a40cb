package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sggtools/boapi/internal/logger"
)

// ConnectOptions configures the optional redis connection.
type ConnectOptions struct {
	Addr        string        // ex: "localhost:6379"
	User        string        // optional username
	Password    string        // optional password
	DB          int           // redis DB number
	DialTimeout time.Duration // per-dial timeout
	IOTimeout   time.Duration // read/write timeout
	PoolSize    int           // connection pool size
	PingTimeout time.Duration // timeout for the startup ping
}

// New creates a redis client and verifies connectivity with one ping.
// Redis is a best-effort snapshot store here, so unlike a primary datastore
// there is no retry loop: if the ping fails the caller runs without redis.
func New(opts ConnectOptions, log logger.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.IOTimeout,
		WriteTimeout: opts.IOTimeout,
		PoolSize:     opts.PoolSize,
	})

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unavailable at %s: %w", opts.Addr, err)
	}

	log.Info("connected to redis", logger.String("addr", opts.Addr))
	return client, nil
}
