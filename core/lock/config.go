package lock

import "time"

// Config holds the run lock configuration.
type Config struct {
	// RedisAddr selects the Redis backed locker when set (host:port).
	// An empty value keeps the lock in-process.
	RedisAddr string `mapstructure:"redis_addr" default:""`

	// RedisPassword authenticates against Redis.
	RedisPassword string `mapstructure:"redis_password" default:""`

	// RedisDB selects the Redis logical database.
	RedisDB int `mapstructure:"redis_db" default:"0"`

	// TTLSeconds bounds how long a lock is held if its owner never releases it.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
}

// TTL returns the lock expiry as a duration.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
