package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awssqs "github.com/aws/aws-sdk-go/service/sqs"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	genericCache "github.com/willipe53/onebor-position-keeper/internal/common/cache"
	"github.com/willipe53/onebor-position-keeper/internal/common/graceful"
	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	cMetrics "github.com/willipe53/onebor-position-keeper/internal/common/metrics"
	"github.com/willipe53/onebor-position-keeper/internal/common/retry"
	"github.com/willipe53/onebor-position-keeper/internal/common/sqs"
	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/repositories"
	"github.com/willipe53/onebor-position-keeper/internal/services"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	WriteDB  *sql.DB
	ReadDB   *sql.DB
	SQLRepo  repositories.SQLRepository
	Queue    sqs.Client
	Service  *services.Services
	Metrics  cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	logLevel := "debug"
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = "info"
	}
	if cfg.App.LogLevel != "" {
		logLevel = cfg.App.LogLevel
	}

	log.Init(cfg.App.Name,
		log.WithEnv(cfg.App.Env),
		log.WithLevel(logLevel),
		log.WithCaller(true),
		log.AddCallerSkip(1))

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, *cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(*cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
	}

	// reference data snapshot cache: redis when available, otherwise a
	// per-process in-memory store with the same interface
	var refCache genericCache.Client[models.ReferenceSnapshot]
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if _, err = rdb.Ping(ctx).Result(); err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return rdb.Close() })

		refCache = genericCache.NewRedisClient[models.ReferenceSnapshot](rdb)
	} else {
		memCache := genericCache.NewInMemoryClient[models.ReferenceSnapshot]()
		stopper = append(stopper, func(ctx context.Context) error {
			memCache.Close()
			return nil
		})
		refCache = memCache
	}

	// transaction queue
	awsCfg := aws.NewConfig().WithRegion(cfg.Queue.Region)
	if cfg.Queue.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Queue.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		err = fmt.Errorf("failed to create aws session: %w", err)
		return
	}
	queueClient, err := sqs.NewClient(awssqs.New(sess), cfg.Queue)
	if err != nil {
		err = fmt.Errorf("failed to create queue client: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, *cfg)

	positionSink := services.NewPositionSink(cfg.PositionSink, sqlRepo)

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	// register service
	srv := services.New(
		*cfg,
		sqlRepo,
		queueClient,
		refCache,
		positionSink,
		retryer,
		mtc,
	)

	return &Setup{
		Config:   *cfg,
		NewRelic: newRelic,
		WriteDB:  writeDB,
		ReadDB:   readDB,
		SQLRepo:  sqlRepo,
		Queue:    queueClient,
		Service:  srv,
		Metrics:  mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable connect_timeout=%d",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
		int(pgConf.ConnectTimeout.Seconds()),
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Errorf(ctx, "setupNR.NewApplication - %v", err)
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
