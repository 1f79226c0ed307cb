package postgres

import (
	"fmt"

	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/partnerrepo"
	"supplychain/internal/adapters/out/postgres/stockrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectionConfig locates the database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open connects with error translation on, so unique violations surface as
// gorm.ErrDuplicatedKey.
func Open(dsn string, log gormlogger.Interface) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if log != nil {
		cfg.Logger = log
	}
	return gorm.Open(gormpostgres.Open(dsn), cfg)
}

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&partnerrepo.PartnerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&orderrepo.TransitionDTO{},
		&stockrepo.StockDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
