package sqlite

import (
	"errors"
	"fmt"

	driver "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phenrril/shopdesk/internal/domain"
)

// Open opens (creating if needed) the single database file at path. Foreign
// key enforcement is switched on per connection; TranslateError turns driver
// constraint failures into gorm sentinel errors.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite at %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates the four tables with their uniqueness and foreign-key
// constraints. Safe to invoke every startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Customer{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
	); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// mapErr translates gorm errors into the domain taxonomy so callers can
// distinguish constraint failures from generic ones.
func mapErr(err error, table string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.ConstraintError{Table: table, Kind: domain.ErrDuplicate, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.ConstraintError{Table: table, Kind: domain.ErrForeignKey, Err: err}
	default:
		return err
	}
}
