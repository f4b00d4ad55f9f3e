package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/enrollment"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/events"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/lifecycle"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/recovery"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/devicedirectory"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote/simmanagement"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/router"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/tracing"
	"github.com/diwise/telematics-device-ops/internal/pkg/presentation/api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

const serviceName string = "telematics-device-ops"

const deviceReturnedTopic string = "device.returned"

var errMissingJWTSecret = errors.New("JWT_SECRET must be set")

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/diwise/config/authz.rego",
		configurationFile: "/opt/diwise/config/config.yaml",
		notificationsFile: "/opt/diwise/config/notifications.yaml",
		inventoryFile:     "/opt/diwise/config/inventory.csv",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "telematics",
		dbSSLMode:  "disable",

		devmode: "false",
	}
}

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	ctx, flags := parseExternalConfig(ctx, defaultFlags())

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(ctx, cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	db, err := newDatabase(logger, flags)
	exitIf(err, logger, "could not create or connect to database")

	err = seedInventory(ctx, db, flags[inventoryFile])
	exitIf(err, logger, "failed to seed device inventory")

	messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	notifications, err := readOptional(logger, flags[notificationsFile])
	exitIf(err, logger, "could not read notification configuration")

	r, deviceReturned, err := initialize(ctx, flags, cfg, db, messenger, policies, notifications)
	exitIf(err, logger, "failed to initialize service")

	messenger.RegisterTopicMessageHandler(deviceReturnedTopic, deviceReturned)

	addr := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info().Str("addr", addr).Msg("starting to listen for connections")

	err = http.ListenAndServe(addr, r)
	exitIf(err, logger, "failed to start request router")
}

// initialize wires repositories, remote clients and application services together and
// returns the api router along with the handler for device.returned messages.
func initialize(ctx context.Context, flags flagMap, cfg *appConfig, db *gorm.DB, bus events.TopicPublisher, policies, notifications io.Reader) (*chi.Mux, messaging.TopicMessageHandler, error) {
	if flags[jwtSecret] == "" {
		return nil, nil, errMissingJWTSecret
	}

	var notifier events.Notifier

	if notifications != nil {
		notificationCfg, err := events.LoadConfiguration(notifications)
		if err != nil {
			return nil, nil, fmt.Errorf("could not load notification configuration: %w", err)
		}
		notifier = events.NewNotifier(notificationCfg)
	}

	publisher := events.NewPublisher(bus, notifier)

	participants := database.NewParticipantRepository(db)
	inventory := database.NewInventoryRepository(db)
	orders := database.NewOrderRepository(db)
	returns := database.NewDeviceReturnRepository(db)
	activities := database.NewActivityRepository(db)

	devices := devicedirectory.New(remote.New(ctx, cfg.DeviceDirectory))
	sims := simmanagement.New(remote.New(ctx, cfg.SimManagement))

	reconciler := recovery.New(devices, sims, returns, cfg.Recovery)

	lc := lifecycle.New(lifecycle.Dependencies{
		Participants: participants,
		Inventory:    inventory,
		Orders:       orders,
		Returns:      returns,
		Activities:   activities,
		Devices:      devices,
		Sims:         sims,
		Reconciler:   reconciler,
		Publisher:    publisher,
	}, cfg.Lifecycle)

	enr := enrollment.New(participants, orders, devices, inventory, reconciler, publisher)

	tokenAuth := jwtauth.New("HS256", []byte(flags[jwtSecret]), nil)

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), tokenAuth, policies, lc, enr)
	if err != nil {
		return nil, nil, err
	}

	return r, events.NewDeviceReturnedHandler(returns, notifier), nil
}

func newDatabase(logger zerolog.Logger, flags flagMap) (*gorm.DB, error) {
	if flags[devmode] == "true" {
		logger.Warn().Msg("running in dev mode with an in-memory database")
		return database.Open(database.NewSQLiteConnector(logger, serviceName))
	}

	return database.Open(database.NewPostgreSQLConnector(logger, database.ConnectorConfig{
		Host:     flags[dbHost],
		Port:     flags[dbPort],
		Username: flags[dbUser],
		DbName:   flags[dbName],
		Password: flags[dbPassword],
		SslMode:  flags[dbSSLMode],
	}))
}

func seedInventory(ctx context.Context, db *gorm.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger := logging.GetFromContext(ctx)
			logger.Info().Str("file", path).Msg("no inventory file found, skipping seed")
			return nil
		}
		return err
	}
	defer f.Close()

	return database.NewInventoryRepository(db).Seed(ctx, f)
}

// readOptional returns nil, nil if there is no file at path.
func readOptional(logger zerolog.Logger, path string) (io.Reader, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info().Str("file", path).Msg("no notification configuration found, subscribers will not be notified")
			return nil, nil
		}
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func parseExternalConfigFile(_ context.Context, cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DeviceDirectory.BaseURL == "" || cfg.SimManagement.BaseURL == "" {
		return nil, errors.New("both deviceDirectory and simManagement urls must be configured")
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	logger := logging.GetFromContext(ctx)

	flags[listenAddress] = envOrDef(logger, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(logger, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(logger, "POLICIES_FILE", flags[policiesFile])
	flags[jwtSecret] = envOrDef(logger, "JWT_SECRET", flags[jwtSecret])

	flags[dbHost] = envOrDef(logger, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(logger, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(logger, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(logger, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(logger, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(logger, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Func("notifications", "cloudevent subscriber configuration", apply(notificationsFile))
	flag.Func("inventory", "internal device inventory to seed", apply(inventoryFile))
	flag.Func("devmode", "enable dev mode", apply(devmode))
	flag.Parse()

	return ctx, flags
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Error().Err(err).Msg(msg)
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
