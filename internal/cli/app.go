package cli

import (
	"go.uber.org/zap"

	"cycleops/internal/client"
	"cycleops/internal/config"
	"cycleops/internal/service"
	"cycleops/internal/ui"
	"cycleops/internal/util"
)

// AppContainer is the central dependency injection container for the application
type AppContainer struct {
	Config   *config.Config
	Logger   *zap.Logger
	Terminal *ui.Terminal

	Hosts        service.HostManager
	Hostgroups   service.HostgroupManager
	Services     service.ServiceManager
	Stacks       service.StackManager
	Setups       service.SetupManager
	Units        service.UnitLister
	Environments service.EnvironmentLister
	Waiter       *service.Waiter
}

// NewApp wires up all services and dependencies based on the provided config
func NewApp(cfg *config.Config) *AppContainer {
	logger := util.NewLogger(cfg)
	terminal := ui.NewTerminal()
	api := client.New(cfg, logger)
	setups := service.NewSetups(api, logger)

	return &AppContainer{
		Config:       cfg,
		Logger:       logger,
		Terminal:     terminal,
		Hosts:        service.NewHosts(api, logger),
		Hostgroups:   service.NewHostgroups(api, logger),
		Services:     service.NewServices(api, logger),
		Stacks:       service.NewStacks(api, logger),
		Setups:       setups,
		Units:        service.NewUnits(api, logger),
		Environments: service.NewEnvironments(api, logger),
		Waiter:       service.NewWaiter(cfg, setups, logger),
	}
}

// Close ensures all resources (like log buffers) are properly flushed
func (a *AppContainer) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}
