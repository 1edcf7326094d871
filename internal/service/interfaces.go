// Package service implements the Cycleops resource operations on top of the
// API transport: listing, lookup by id or name, mutations, variable-document
// merging and the deployment wait loop.
package service

import (
	"context"

	"cycleops/internal/domain"
)

// HostManager defines operations on hosts.
type HostManager interface {
	List(ctx context.Context) ([]domain.Host, error)
	Get(ctx context.Context, identifier string) (*domain.Host, error)
	Create(ctx context.Context, params HostParams) error
	Update(ctx context.Context, identifier string, params HostParams) error
	Delete(ctx context.Context, identifier string) error
}

// HostgroupManager defines operations on hostgroups.
type HostgroupManager interface {
	List(ctx context.Context) ([]domain.Hostgroup, error)
	Get(ctx context.Context, identifier string) (*domain.Hostgroup, error)
	Create(ctx context.Context, params HostgroupParams) error
	Update(ctx context.Context, identifier string, params HostgroupParams) error
	Delete(ctx context.Context, identifier string) error
}

// ServiceManager defines operations on services, including the container
// convenience commands that edit the nested variables document.
type ServiceManager interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, identifier string) (*domain.Service, error)
	Create(ctx context.Context, params ServiceParams, vars []Assignment) error
	Update(ctx context.Context, identifier string, params ServiceParams, vars []Assignment) error
	Delete(ctx context.Context, identifier string) error
	CreateContainer(ctx context.Context, identifier string, params ContainerParams) error
	UpdateContainer(ctx context.Context, identifier string, params ContainerParams) error
}

// StackManager defines operations on stacks.
type StackManager interface {
	List(ctx context.Context) ([]domain.Stack, error)
	Get(ctx context.Context, identifier string) (*domain.Stack, error)
	Create(ctx context.Context, params StackParams) error
	Update(ctx context.Context, identifier string, params StackParams) error
	Delete(ctx context.Context, identifier string) error
}

// SetupManager defines operations on setups and their deployments.
type SetupManager interface {
	List(ctx context.Context) ([]domain.Setup, error)
	Get(ctx context.Context, identifier string) (*domain.Setup, error)
	Create(ctx context.Context, params SetupParams) error
	Update(ctx context.Context, identifier string, params SetupParams) error
	Delete(ctx context.Context, identifier string) error
	Deploy(ctx context.Context, identifier string) (*domain.Job, error)
	Job(ctx context.Context, id int) (*domain.Job, error)
}

// UnitLister lists the available catalog units.
type UnitLister interface {
	List(ctx context.Context) ([]domain.Unit, error)
}

// EnvironmentLister lists the available environments.
type EnvironmentLister interface {
	List(ctx context.Context) ([]domain.Environment, error)
}

// Ensure compile-time interface satisfaction.
var (
	_ HostManager       = (*Hosts)(nil)
	_ HostgroupManager  = (*Hostgroups)(nil)
	_ ServiceManager    = (*Services)(nil)
	_ StackManager      = (*Stacks)(nil)
	_ SetupManager      = (*Setups)(nil)
	_ UnitLister        = (*Units)(nil)
	_ EnvironmentLister = (*Environments)(nil)
)
