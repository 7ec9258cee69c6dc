package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/earthdata-tools/cmr-opendap/auth"
	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
	"github.com/earthdata-tools/cmr-opendap/pkg/config"
	"github.com/earthdata-tools/cmr-opendap/pkg/logging"
	"github.com/earthdata-tools/cmr-opendap/pkg/snapshot"
)

// app bundles the pieces every command needs: configuration, logger,
// resolved environment and the snapshot store.
type app struct {
	cfg         *config.Config
	logger      *zap.SugaredLogger
	environment cmr.Environment
	envConfig   cmr.EnvironmentConfig
	store       snapshot.Store
	timeout     time.Duration
}

// newApp resolves configuration and flags. The environment is validated
// here, before any network activity.
func newApp(cmd *cli.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if v := cmd.String(logLevelFlag.Name); v != "" {
		level = v
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	environment, envConfig, err := cmr.LookupEnvironment(cmd.String(envFlag.Name))
	if err != nil {
		return nil, err
	}

	dir := cfg.SnapshotDir
	if v := cmd.String(snapshotDirFlag.Name); v != "" {
		dir = v
	}

	timeout := cfg.HTTPTimeout
	if v := cmd.Duration(timeoutFlag.Name); v > 0 {
		timeout = v
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		environment: environment,
		envConfig:   envConfig,
		store:       snapshot.NewFileStore(dir),
		timeout:     timeout,
	}, nil
}

// searchClient builds a CMR client for the association flows,
// authenticated with the configured LaunchPad token.
func (a *app) searchClient() (*cmr.Client, error) {
	if !a.envConfig.SupportsAssociations() {
		return nil, fmt.Errorf("%w: %s", cmr.ErrAssociationsUnsupported, a.environment)
	}
	if a.cfg.LaunchpadToken == "" {
		return nil, fmt.Errorf("LAUNCHPAD_TOKEN is required for association flows")
	}

	httpClient := &http.Client{
		Transport: &auth.TokenTransport{Token: a.cfg.LaunchpadToken},
		Timeout:   a.timeout,
	}
	return cmr.NewClient(a.envConfig,
		cmr.WithHTTPClient(httpClient),
		cmr.WithLogger(a.logger),
	)
}
