package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderbot/internal/adapters/out/postgres/agentrepo"
	"orderbot/internal/adapters/out/postgres/catalogrepo"
	"orderbot/internal/adapters/out/postgres/customerrepo"
	"orderbot/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Open connects to dsn. Constraint violations are translated into GORM's
// sentinel errors so the repositories can classify them.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(slogWriter{logger: slog.Default().With("component", "gorm")}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

// slogWriter routes GORM's slow query and error reports to slog.
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Warn(fmt.Sprintf(format, args...))
}

// Models lists every table of the schema in creation order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&agentrepo.AgentDTO{},
		&catalogrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&orderrepo.CounterDTO{},
	}
}

// Migrate creates or updates the schema and makes sure the order counter row exists.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	counter := orderrepo.CounterDTO{Name: orderrepo.CounterName}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error
}
