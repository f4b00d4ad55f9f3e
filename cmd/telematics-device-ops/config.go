package main

import (
	"github.com/diwise/telematics-device-ops/internal/pkg/application/lifecycle"
	"github.com/diwise/telematics-device-ops/internal/pkg/application/recovery"
	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/remote"
)

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile
	notificationsFile
	inventoryFile

	jwtSecret

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	devmode
)

type appConfig struct {
	DeviceDirectory remote.Config    `yaml:"deviceDirectory"`
	SimManagement   remote.Config    `yaml:"simManagement"`
	Recovery        recovery.Config  `yaml:"recovery"`
	Lifecycle       lifecycle.Config `yaml:"lifecycle"`
}
