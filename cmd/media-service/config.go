package main

import (
	"fmt"

	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/env"
	"github.com/peoplesmarkets/media/errdefs"
)

// config is the process bootstrap configuration. Every field is required; a missing value fails process startup
// rather than falling back to a default.
type config struct {
	Host string

	JWKSURL  string
	JWKSHost string

	DB db.Config

	BucketName            string
	BucketEndpoint        string
	BucketAccessKeyID     string
	BucketSecretAccessKey string

	FileMaxSize int64

	CommerceServiceURL string
}

func requireString(name string) (string, error) {
	value, ok := env.GetStringEnvVar(name)
	if !ok || value == "" {
		return "", fmt.Errorf("missing required environment variable %s", name)
	}

	return value, nil
}

func requireUint64(name string) (uint64, error) {
	value, ok := env.GetUint64EnvVar(name)
	if !ok {
		return 0, fmt.Errorf("missing required environment variable %s", name)
	}

	return value, nil
}

// loadConfig reads and validates every environment variable the service needs. Every missing variable is
// collected and reported together, rather than stopping at the first one, so a misconfigured deployment only
// needs one restart cycle to find every problem.
func loadConfig() (config, error) {
	var (
		cfg  config
		errs errdefs.MultiError
	)

	errs.Prefix = "loading config: "

	fields := []struct {
		name string
		dest *string
	}{
		{"HOST", &cfg.Host},
		{"JWKS_URL", &cfg.JWKSURL},
		{"JWKS_HOST", &cfg.JWKSHost},
		{"DB_HOST", &cfg.DB.Host},
		{"DB_USER", &cfg.DB.User},
		{"DB_PASSWORD", &cfg.DB.Password},
		{"DB_DBNAME", &cfg.DB.DBName},
		{"BUCKET_NAME", &cfg.BucketName},
		{"BUCKET_ENDPOINT", &cfg.BucketEndpoint},
		{"BUCKET_ACCESS_KEY_ID", &cfg.BucketAccessKeyID},
		{"BUCKET_SECRET_ACCESS_KEY", &cfg.BucketSecretAccessKey},
		{"COMMERCE_SERVICE_URL", &cfg.CommerceServiceURL},
	}

	for _, f := range fields {
		value, err := requireString(f.name)
		errs.Add(err)
		*f.dest = value
	}

	port, err := requireUint64("DB_PORT")
	errs.Add(err)
	cfg.DB.Port = int(port)

	fileMaxSize, err := requireUint64("FILE_MAX_SIZE")
	errs.Add(err)
	cfg.FileMaxSize = int64(fileMaxSize)

	if err := errs.ErrOrNil(); err != nil {
		return config{}, err
	}

	return cfg, nil
}
