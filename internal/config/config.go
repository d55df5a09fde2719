package config

import (
	"time"
)

type (
	Config struct {
		App      App      `json:"app"`
		Postgres Postgres `json:"postgres"`
		Redis    Redis    `json:"redis"`

		Queue        QueueConfig        `json:"queue"`
		Lease        LeaseConfig        `json:"lease"`
		Keeper       KeeperConfig       `json:"keeper"`
		PositionSink PositionSinkConfig `json:"position_sink"`

		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`

		NewRelicLicenseKey string `json:"new_relic_license_key"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
		MaxRetries        uint64        `json:"max_retries"`
	}

	App struct {
		Env             string        `json:"env"`
		Name            string        `json:"name"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string        `json:"db_host"`
		DbPort            string        `json:"db_port"`
		DbUser            string        `json:"db_user"`
		DbPass            string        `json:"db_pass"`
		DbName            string        `json:"db_name"`
		DbSchema          string        `json:"db_schema"`
		ConnectTimeout    time.Duration `json:"connect_timeout"`
		MaxOpenConnection int           `json:"maxOpenConnections"`
		MaxIdleConnection int           `json:"maxIdleConnections"`
		ConnMaxLifetime   int           `json:"connMaxLifetime"`
	}

	Redis struct {
		Enabled  bool   `json:"enabled"`
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// QueueConfig describes the transaction FIFO queue. VisibilityTimeout is
	// the implicit retry window: a received-but-unacked message reappears
	// after it elapses.
	QueueConfig struct {
		Region            string        `json:"region"`
		Endpoint          string        `json:"endpoint"`
		URL               string        `json:"url"`
		MaxBatchMessages  int64         `json:"max_batch_messages"`
		VisibilityTimeout time.Duration `json:"visibility_timeout"`
	}

	LeaseConfig struct {
		Resource string        `json:"resource"`
		TTL      time.Duration `json:"ttl"`
	}

	KeeperConfig struct {
		// UseLock toggles the cross-invocation lease. The queue's
		// per-transaction grouping alone already prevents double-booking a
		// single transaction.
		UseLock         bool   `json:"use_lock"`
		DefaultCurrency string `json:"default_currency"`
		ActingUserID    int64  `json:"acting_user_id"`
	}

	// PositionSinkConfig selects where computed position records go.
	// Driver "log" traces them, "sql" appends to the positions ledger table.
	PositionSinkConfig struct {
		Driver string `json:"driver"`
	}
)

const (
	PositionSinkDriverLog = "log"
	PositionSinkDriverSQL = "sql"
)

const (
	DefaultLeaseResource     = "Position Keeper"
	DefaultLeaseTTL          = 5 * time.Minute
	DefaultVisibilityTimeout = 30 * time.Second
	DefaultMaxBatchMessages  = 10
	DefaultConnectTimeout    = 5 * time.Second
	DefaultCurrency          = "USD"
)

// ApplyDefaults fills the reference values for anything the config file
// leaves unset.
func (c *Config) ApplyDefaults() {
	if c.Lease.Resource == "" {
		c.Lease.Resource = DefaultLeaseResource
	}
	if c.Lease.TTL <= 0 {
		c.Lease.TTL = DefaultLeaseTTL
	}
	if c.Queue.VisibilityTimeout <= 0 {
		c.Queue.VisibilityTimeout = DefaultVisibilityTimeout
	}
	if c.Queue.MaxBatchMessages <= 0 {
		c.Queue.MaxBatchMessages = DefaultMaxBatchMessages
	}
	if c.Postgres.Write.ConnectTimeout <= 0 {
		c.Postgres.Write.ConnectTimeout = DefaultConnectTimeout
	}
	if c.Postgres.Read.ConnectTimeout <= 0 {
		c.Postgres.Read.ConnectTimeout = DefaultConnectTimeout
	}
	if c.Keeper.DefaultCurrency == "" {
		c.Keeper.DefaultCurrency = DefaultCurrency
	}
	if c.PositionSink.Driver == "" {
		c.PositionSink.Driver = PositionSinkDriverLog
	}
}
