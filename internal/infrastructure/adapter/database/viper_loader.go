package database

import (
	"time"

	"github.com/logifin/wallet-ledger/internal/infrastructure/config"
)

// NewConfigFromAppConfig adapts the loaded application configuration to the
// database configuration, keeping defaults for unset values
func NewConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	db := conf.Database
	if db.Driver != "" {
		dbConf.Driver = db.Driver
	}
	dbConf.Host = db.Host
	if db.Port > 0 {
		dbConf.Port = db.Port
	}
	dbConf.Username = db.Username
	dbConf.Password = db.Password
	dbConf.Database = db.Database
	dbConf.Path = db.Path
	if db.SSLMode != "" {
		dbConf.SSLMode = db.SSLMode
	}
	if db.LogLevel != "" {
		dbConf.LogLevel = db.LogLevel
	}
	if db.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = db.MaxOpenConns
	}
	if db.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = db.MaxIdleConns
	}
	if db.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = db.ConnMaxLifetime
	}
	if db.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = db.ConnMaxIdleTime
	}
	if db.QueryTimeout > 0 {
		dbConf.QueryTimeout = db.QueryTimeout
	}
	if db.RetryAttempts > 0 {
		dbConf.RetryAttempts = db.RetryAttempts
	}
	if db.RetryDelay > 0 {
		dbConf.RetryDelay = db.RetryDelay
	}
	if conf.Transaction.LockTimeoutMs > 0 {
		dbConf.LockTimeout = time.Duration(conf.Transaction.LockTimeoutMs) * time.Millisecond
	}

	return dbConf
}
