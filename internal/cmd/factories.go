package cmd

import (
	"fmt"

	adaptergit "github.com/renato0307/gitwalk/internal/adapters/git"
	adapterstorage "github.com/renato0307/gitwalk/internal/adapters/storage"
	"github.com/renato0307/gitwalk/internal/config"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/ports"
	"github.com/renato0307/gitwalk/internal/services"
)

// ContainerOptions selects the adapters wired into the Container
type ContainerOptions struct {
	Backend  string
	StateDir string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	IndexService     *services.IndexService
	NavigatorService *services.NavigatorService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	// Create adapters
	vcs, err := newVCSRepository(opts.Backend)
	if err != nil {
		return nil, err
	}
	storeOpener := adapterstorage.NewSQLiteStoreOpener(opts.StateDir)

	// Create services
	indexService := services.NewIndexService(vcs)
	navigatorService := services.NewNavigatorService(indexService, storeOpener, vcs)

	logging.Logger.Debug("Container created", "backend", opts.Backend, "state_dir", opts.StateDir)
	return &Container{
		IndexService:     indexService,
		NavigatorService: navigatorService,
	}, nil
}

func newVCSRepository(backend string) (ports.VCSRepository, error) {
	switch backend {
	case "", config.BackendCLI:
		return adaptergit.NewCLIRepository(), nil
	case config.BackendGoGit:
		return adaptergit.NewGoGitRepository(), nil
	default:
		return nil, fmt.Errorf("unknown backend '%s'", backend)
	}
}
