package cmd

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/jobs"
	"supplychain/internal/pkg/logger"
	"supplychain/internal/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration
	Swagger         bool

	DB             postgres.ConnectionConfig
	DBLogLevel     string
	DBMigrate      bool
	JWTSecret      string
	JWTIssuer      string
	Log            logger.Config
	Tracing        tracing.Config
	Archive        jobs.ArchiveConfig
	ArchiveEnabled bool
}

// LoadConfig reads the environment, after loading .env when one exists.
// Environment variables win over .env entries.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		HTTPPort:        v.GetString("http.port"),
		ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		Swagger:         v.GetBool("http.swagger"),
		DB: postgres.ConnectionConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		DBLogLevel: v.GetString("db.log_level"),
		DBMigrate:  v.GetBool("db.migrate"),
		JWTSecret:  v.GetString("jwt.secret"),
		JWTIssuer:  v.GetString("jwt.issuer"),
		Log: logger.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Tracing: tracing.Config{
			Enabled:      v.GetBool("tracing.enabled"),
			ServiceName:  v.GetString("tracing.service_name"),
			Environment:  v.GetString("app.env"),
			OTLPEndpoint: v.GetString("tracing.otlp_endpoint"),
			Insecure:     v.GetBool("tracing.insecure"),
		},
		Archive: jobs.ArchiveConfig{
			Spec:  v.GetString("archive.spec"),
			Age:   v.GetDuration("archive.age"),
			Batch: v.GetInt("archive.batch"),
		},
		ArchiveEnabled: v.GetBool("archive.enabled"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.swagger", true)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.log_level", "warn")
	v.SetDefault("db.migrate", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("tracing.service_name", "supplychain")
	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.spec", "0 0 3 * * *")
	v.SetDefault("archive.age", 30*24*time.Hour)
	v.SetDefault("archive.batch", 200)
}
