package app

import (
	"os"

	"github.com/tiendadam/storepanel/config"
	"github.com/tiendadam/storepanel/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

// Application owns the configuration and the single store database
// connection. The connection is opened lazily on first use and released
// once at shutdown; there is no pooling beyond the driver's own handle
// and exactly one logical caller (the menu loop).
type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
}

var (
	_ DBProvider     = (*Application)(nil)
	_ ConfigProvider = (*Application)(nil)
	_ AppContext     = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

// DB returns the live database handle, opening one if none is open yet.
// Callers convert a returned error into a user-visible diagnostic and
// abort the current operation; the tool itself keeps running.
func (a *Application) DB() (*gorm.DB, error) {
	if a.gormDB != nil {
		return a.gormDB, nil
	}
	db, err := openDatabase(a.appConfig.Database)
	if err != nil {
		zap.S().Errorf("database connection failed: %v", err)
		return nil, err
	}
	a.gormDB = db
	zap.S().Infof("database connection established, type: %s", a.appConfig.Database.Type)
	return db, nil
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

// InitLogger configures the global zap logger. Operational logs go to a
// rotated file so that stdout carries nothing but the console tables;
// with file logging disabled they fall back to stderr.
func (a *Application) InitLogger() {
	cfg := a.appConfig.Logger

	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lumberJackLogger),
			zapConfig.Level,
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stderr),
			zapConfig.Level,
		)
		logger = zap.New(core, zap.AddCaller())
	}

	zap.ReplaceGlobals(logger)
}

// MigrateDB creates the store schema on the current connection. The
// production schema belongs to the store project; this exists for test
// and local sqlite databases only and is never reached from the menu.
func (a *Application) MigrateDB() error {
	db, err := a.DB()
	if err != nil {
		return err
	}
	return db.Migrator().AutoMigrate(domain.Tables...)
}

// Release closes the database connection if one is open. Safe to call
// more than once.
func (a *Application) Release() {
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		a.gormDB = nil
		zap.S().Info("database connection closed")
	}
	_ = zap.L().Sync()
}
