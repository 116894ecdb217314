// Package handlers implements the CLI command logic.
//
// Each handler loads the configuration, builds the provider client, and
// delegates to the platform layer. Factory function variables decouple the
// handlers from the real provider for testing.
package handlers

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/imamik/gcenode/internal/config"
	"github.com/imamik/gcenode/internal/platform/gce"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfigFile loads the CLI configuration.
	loadConfigFile = config.LoadFile

	// newComputeAPI builds the provider client for a project.
	newComputeAPI = func(ctx context.Context, project string) (gce.ComputeAPI, error) {
		return gce.NewRealClient(ctx, project, config.LoadTimeouts())
	}
)

// newLogger builds the stderr logger shared by all handlers.
func newLogger() logr.Logger {
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

// setup loads the configuration and builds the provider client.
func setup(ctx context.Context, configPath string) (*config.Config, gce.ComputeAPI, error) {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, nil, err
	}
	api, err := newComputeAPI(ctx, cfg.Project)
	if err != nil {
		return nil, nil, err
	}
	return cfg, api, nil
}

// newManager builds a lifecycle manager from the environment-derived
// timeouts.
func newManager(api gce.ComputeAPI) *gce.Manager {
	return gce.NewManager(api, config.LoadTimeouts(), gce.WithManagerLogger(newLogger()))
}
