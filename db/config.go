package db

import "time"

type Config struct {
	Driver string
	DSN    string

	SQLite SQLiteConfig
	Pool   PoolConfig
}

type SQLiteConfig struct {
	WAL           bool
	BusyTimeoutMs int
	ForeignKeys   bool
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}
