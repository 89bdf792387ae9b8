package app

import (
	"github.com/tiendadam/storepanel/config"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() (*gorm.DB, error)
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// AppContext combines the provider interfaces with the lifecycle methods
// the console layer depends on.
type AppContext interface {
	DBProvider
	ConfigProvider

	MigrateDB() error
	Release()
}
