package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM connects the GORM handle used by repositories and
// transactional workflow operations.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	orm, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = orm
	return orm, nil
}
