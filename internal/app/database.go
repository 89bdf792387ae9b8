package app

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/tiendadam/storepanel/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openDatabase dials the configured database. mysql is the legacy store
// target, postgres is supported for migrated deployments, sqlite backs
// tests and local experiments.
func openDatabase(cfg config.DBConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch cfg.Type {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Passwd, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), gormConfig)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
		return gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		// Name carries the file path. Foreign keys stay on so referenced
		// rows are protected the same way the production schema does it.
		return gorm.Open(sqlite.Open(cfg.Name+"?_pragma=foreign_keys(1)"), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}
