package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/infrastructure/messaging"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"
	"jobboard/migrations"

	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Container holds every long-lived dependency of the process.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Bus    *messaging.Publisher

	Jobs            *usecase.Jobs
	Candidates      *usecase.Candidates
	Notifications   *usecase.Notifications
	Recommendations *usecase.Recommendation
	SavedJobs       *usecase.SavedJobs
	Applications    *usecase.Applications

	stopHub context.CancelFunc
	hubDone chan struct{}
}

type sqlDBProvider interface {
	SQLDB() *sql.DB
}

// OpenDB connects to Postgres with the configured pool settings.
func OpenDB(ctx context.Context, cfg config.Config) (database.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return dbpostgres.Connect(ctx, cfg.Database, cfg.App.AppName)
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db database.DB, logger *zap.Logger) error {
	p, ok := db.(sqlDBProvider)
	if !ok || p.SQLDB() == nil {
		return errors.New("migrate: database handle does not expose *sql.DB")
	}
	return migration.Runner{FS: migrations.FS, Logger: logger}.Run(ctx, p.SQLDB())
}

// Seed inserts the fixture candidates and jobs. Existing rows are left alone.
func Seed(ctx context.Context, db database.DB, logger *zap.Logger) error {
	return seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}.Run(ctx, db)
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, DB: db}

	if cfg.Database.RunMigrations {
		if err := Migrate(ctx, db, logger); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	if cfg.Database.RunSeeders {
		if err := Seed(ctx, db, logger); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)

	hubCtx, stop := context.WithCancel(context.Background())
	c.Hub = ws.NewHub(logger)
	c.stopHub = stop
	c.hubDone = make(chan struct{})
	go func() {
		defer close(c.hubDone)
		c.Hub.Run(hubCtx)
	}()

	publishers := []usecase.NotificationPublisher{c.Hub}
	if cfg.AMQP.Enabled() {
		bus, err := messaging.Dial(cfg.AMQP, logger)
		if err != nil {
			logger.Warn("amqp unavailable, notifications will not be forwarded", zap.Error(err))
		} else {
			c.Bus = bus
			publishers = append(publishers, bus)
		}
	}

	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)
	savedJobRepo := repository.NewPostgresSavedJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	pool := usecase.NewJobPool(jobRepo, c.Cache, cfg.Redis.JobPoolTTL, logger)

	c.Jobs = usecase.NewJobUsecase(jobRepo, pool, logger)
	c.Candidates = usecase.NewCandidateUsecase(candidateRepo)
	c.Notifications = usecase.NewNotificationUsecase(notificationRepo, logger, publishers...)
	c.SavedJobs = usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	c.Applications = usecase.NewApplicationUsecase(applicationRepo, jobRepo, c.Notifications, logger)
	c.Recommendations = usecase.NewRecommendationUsecase(
		recommendation.NewEngine(cfg.Recommendation),
		candidateRepo,
		pool,
		c.Notifications,
		c.Notifications,
		logger,
	)

	return c, nil
}

// Close drains background notification work before tearing down the
// connections it depends on.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Recommendations != nil {
		c.Recommendations.Wait()
	}
	if c.stopHub != nil {
		c.stopHub()
		<-c.hubDone
	}

	var errs []error
	if c.Bus != nil {
		errs = append(errs, c.Bus.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
