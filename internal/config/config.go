package config

import "time"

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN,required"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// MarketplaceConfig is the order placement policy.
type MarketplaceConfig struct {
	LockTimeout          time.Duration `env:"MARKETPLACE_LOCK_TIMEOUT" envDefault:"5s"`
	AllowNegativeBalance bool          `env:"MARKETPLACE_ALLOW_NEGATIVE_BALANCE" envDefault:"false"`
}
