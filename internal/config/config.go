package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"jobboard/internal/domain/recommendation"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	AMQP           AMQPConfig
	Log            LogConfig
	Recommendation recommendation.Config
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	RunMigrations bool
	RunSeeders    bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// JobPoolTTL bounds how long a cached job pool snapshot is served.
	JobPoolTTL time.Duration
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

func (c AMQPConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid configuration")
)

// Load reads configuration from the process environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	return LoadFrom(v)
}

// LoadFrom reads configuration from v. Keys are the environment variable
// names; v is expected to have AutomaticEnv enabled or explicit values set.
func LoadFrom(v *viper.Viper) (Config, error) {
	setDefaults(v)

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),

		RunMigrations: v.GetBool("DB_RUN_MIGRATIONS"),
		RunSeeders:    v.GetBool("DB_RUN_SEEDERS"),
	}

	cfg.Redis = RedisConfig{
		Host:       opt("REDIS_HOST"),
		Port:       opt("REDIS_PORT"),
		Password:   v.GetString("REDIS_PASSWORD"),
		DB:         v.GetInt("REDIS_DB"),
		JobPoolTTL: time.Duration(v.GetInt("REDIS_TTL")) * time.Second,
	}

	cfg.AMQP = AMQPConfig{
		URL:      opt("AMQP_URL"),
		Exchange: opt("AMQP_EXCHANGE"),
	}

	cfg.Log = LogConfig{
		JSON:  v.GetBool("LOG_JSON"),
		Debug: v.GetBool("LOG_DEBUG"),
	}

	cfg.Recommendation = recommendation.Config{
		Weights: recommendation.Weights{
			Skills:     v.GetFloat64("RECOMMEND_WEIGHT_SKILLS"),
			Experience: v.GetFloat64("RECOMMEND_WEIGHT_EXPERIENCE"),
			Location:   v.GetFloat64("RECOMMEND_WEIGHT_LOCATION"),
			JobType:    v.GetFloat64("RECOMMEND_WEIGHT_JOB_TYPE"),
		},
		Reasons: recommendation.ReasonThresholds{
			Skill:        v.GetInt("RECOMMEND_REASON_SKILL"),
			Experience:   v.GetInt("RECOMMEND_REASON_EXPERIENCE"),
			Location:     v.GetInt("RECOMMEND_REASON_LOCATION"),
			JobType:      v.GetInt("RECOMMEND_REASON_JOB_TYPE"),
			PartialSkill: v.GetInt("RECOMMEND_REASON_PARTIAL_SKILL"),
		},
		MinScore:     v.GetInt("RECOMMEND_MIN_SCORE"),
		NotifyScore:  v.GetInt("RECOMMEND_NOTIFY_SCORE"),
		DefaultLimit: v.GetInt("RECOMMEND_DEFAULT_LIMIT"),
		DedupWindow:  v.GetDuration("RECOMMEND_DEDUP_WINDOW"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := ValidateRecommendation(cfg.Recommendation); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateRecommendation checks bounds on every threshold and that the weights sum to 1.
func ValidateRecommendation(rc recommendation.Config) error {
	if err := validator.New().Struct(rc); err != nil {
		return fmt.Errorf("%w: recommendation: %v", errInvalidConfig, err)
	}
	w := rc.Weights
	sum := w.Skills + w.Experience + w.Location + w.JobType
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("%w: recommendation weights must sum to 1, got %.4f", errInvalidConfig, sum)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := recommendation.DefaultConfig()

	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL", 600)
	v.SetDefault("AMQP_EXCHANGE", "jobboard.notifications")

	v.SetDefault("RECOMMEND_WEIGHT_SKILLS", def.Weights.Skills)
	v.SetDefault("RECOMMEND_WEIGHT_EXPERIENCE", def.Weights.Experience)
	v.SetDefault("RECOMMEND_WEIGHT_LOCATION", def.Weights.Location)
	v.SetDefault("RECOMMEND_WEIGHT_JOB_TYPE", def.Weights.JobType)
	v.SetDefault("RECOMMEND_REASON_SKILL", def.Reasons.Skill)
	v.SetDefault("RECOMMEND_REASON_EXPERIENCE", def.Reasons.Experience)
	v.SetDefault("RECOMMEND_REASON_LOCATION", def.Reasons.Location)
	v.SetDefault("RECOMMEND_REASON_JOB_TYPE", def.Reasons.JobType)
	v.SetDefault("RECOMMEND_REASON_PARTIAL_SKILL", def.Reasons.PartialSkill)
	v.SetDefault("RECOMMEND_MIN_SCORE", def.MinScore)
	v.SetDefault("RECOMMEND_NOTIFY_SCORE", def.NotifyScore)
	v.SetDefault("RECOMMEND_DEFAULT_LIMIT", def.DefaultLimit)
	v.SetDefault("RECOMMEND_DEDUP_WINDOW", def.DedupWindow)
}
