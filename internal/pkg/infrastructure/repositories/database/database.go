package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrRepositoryError = errors.New("could not fetch data from repository")
	ErrSwapNotAllowed  = errors.New("swap not allowed")
)

type ConnectorConfig struct {
	Host     string
	Port     string
	Username string
	DbName   string
	Password string
	SslMode  string
}

type ConnectorFunc func() (*gorm.DB, zerolog.Logger, error)

// NewSQLiteConnector opens a named, shared in-memory database. Connections using
// the same name see the same data.
func NewSQLiteConnector(log zerolog.Logger, name string) ConnectorFunc {
	return func() (*gorm.DB, zerolog.Logger, error) {
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger:          logger.Default.LogMode(logger.Silent),
			CreateBatchSize: 1000,
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
			sqldb, _ := db.DB()
			sqldb.SetMaxOpenConns(1)
		}

		return db, log, err
	}
}

func NewPostgreSQLConnector(log zerolog.Logger, cfg ConnectorConfig) ConnectorFunc {
	if cfg.Port == "" {
		cfg.Port = "5432"
	}

	dbURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s password=%s", cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.SslMode, cfg.Password)

	return func() (*gorm.DB, zerolog.Logger, error) {
		sublogger := log.With().Str("host", cfg.Host).Str("database", cfg.DbName).Logger()

		var err error

		for attempt := 1; attempt <= 5; attempt++ {
			sublogger.Info().Msg("connecting to database host")

			var db *gorm.DB
			db, err = gorm.Open(postgres.Open(dbURI), &gorm.Config{
				Logger: logger.New(
					&sublogger,
					logger.Config{
						SlowThreshold:             time.Second,
						LogLevel:                  logger.Warn,
						IgnoreRecordNotFoundError: true,
						Colorful:                  false,
					},
				),
			})
			if err == nil {
				return db, sublogger, nil
			}

			sublogger.Error().Err(err).Int("attempt", attempt).Msg("failed to connect to database")
			time.Sleep(3 * time.Second)
		}

		return nil, sublogger, err
	}
}

// Open connects using connect and migrates every table owned by this package.
func Open(connect ConnectorFunc) (*gorm.DB, error) {
	db, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&Vehicle{},
		&Participant{},
		&DeviceReturn{},
		&DeviceOrder{},
		&DeviceOrderDetail{},
		&InventoryDevice{},
		&DeviceActivity{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
