package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by parseEnv.
const (
	EnvGRPCAddr              = "ORGMANAGER_GRPC_ADDR"
	EnvStorage               = "ORGMANAGER_STORAGE"
	EnvMongoURI              = "ORGMANAGER_MONGO_URI"
	EnvMongoDatabase         = "ORGMANAGER_MONGO_DB"
	EnvDatabaseDSN           = "ORGMANAGER_DATABASE_DSN"
	EnvHasher                = "ORGMANAGER_HASHER"
	EnvBcryptCost            = "ORGMANAGER_BCRYPT_COST"
	EnvEnforceSecretStrength = "ORGMANAGER_ENFORCE_SECRET_STRENGTH"
	EnvRequestTimeout        = "ORGMANAGER_REQUEST_TIMEOUT"
	EnvLogLevel              = "ORGMANAGER_LOG_LEVEL"
)

func parseEnv(config *Config) {
	envString(EnvGRPCAddr, &config.EndpointAddrGRPC)
	envString(EnvStorage, &config.StorageBackend)
	envString(EnvMongoURI, &config.MongoURI)
	envString(EnvMongoDatabase, &config.MongoDatabase)
	envString(EnvDatabaseDSN, &config.DatabaseDSN)
	envString(EnvHasher, &config.Hasher)
	envString(EnvLogLevel, &config.LogLevel)

	if v, ok := os.LookupEnv(EnvBcryptCost); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvBcryptCost, err))
		}
		config.BcryptCost = n
	}
	if v, ok := os.LookupEnv(EnvEnforceSecretStrength); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvEnforceSecretStrength, err))
		}
		config.EnforceSecretStrength = b
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvRequestTimeout, err))
		}
		config.RequestTimeout = d
	}
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
