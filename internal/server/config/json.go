package config

import (
	"encoding/json"
	"os"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/flagx"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "5s" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	StorageBackend        string         `json:"storage_backend"`
	MongoURI              string         `json:"mongo_uri"`
	MongoDatabase         string         `json:"mongo_database"`
	DatabaseDSN           string         `json:"database_dsn"`
	Hasher                string         `json:"hasher"`
	BcryptCost            int            `json:"bcrypt_cost"`
	EnforceSecretStrength bool           `json:"enforce_secret_strength"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config (or $ORGMANAGER_CONFIG)
// onto config. Keys missing from the file keep their current values.
func parseJson(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{
		EndpointAddrGRPC:      config.EndpointAddrGRPC,
		StorageBackend:        config.StorageBackend,
		MongoURI:              config.MongoURI,
		MongoDatabase:         config.MongoDatabase,
		DatabaseDSN:           config.DatabaseDSN,
		Hasher:                config.Hasher,
		BcryptCost:            config.BcryptCost,
		EnforceSecretStrength: config.EnforceSecretStrength,
		RequestTimeout:        timex.Duration{Duration: config.RequestTimeout},
		LogLevel:              config.LogLevel,
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.StorageBackend = c.StorageBackend
	config.MongoURI = c.MongoURI
	config.MongoDatabase = c.MongoDatabase
	config.DatabaseDSN = c.DatabaseDSN
	config.Hasher = c.Hasher
	config.BcryptCost = c.BcryptCost
	config.EnforceSecretStrength = c.EnforceSecretStrength
	config.RequestTimeout = c.RequestTimeout.Duration
	config.LogLevel = c.LogLevel
}
