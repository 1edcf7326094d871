package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"cycleops/internal/client"
	"cycleops/internal/domain"
)

// HostgroupParams are the mutable fields of a hostgroup.
type HostgroupParams struct {
	Name          string
	EnvironmentID int
	HostIDs       []int
}

func (p HostgroupParams) payload() map[string]any {
	return compact(map[string]any{
		"name":        p.Name,
		"environment": p.EnvironmentID,
		"hosts":       p.HostIDs,
	})
}

// Hostgroups manages Cycleops hostgroups.
type Hostgroups struct {
	api    *client.Client
	logger *zap.Logger
}

// NewHostgroups initializes the hostgroup service.
func NewHostgroups(api *client.Client, logger *zap.Logger) *Hostgroups {
	return &Hostgroups{api: api, logger: logger}
}

// List returns all hostgroups.
func (g *Hostgroups) List(ctx context.Context) ([]domain.Hostgroup, error) {
	var groups []domain.Hostgroup
	if err := g.api.Request(ctx, http.MethodGet, "hostgroups", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Get resolves identifier (numeric id or name) to a single hostgroup.
func (g *Hostgroups) Get(ctx context.Context, identifier string) (*domain.Hostgroup, error) {
	if id, ok := numericID(identifier); ok {
		var group domain.Hostgroup
		if err := g.api.Request(ctx, http.MethodGet, fmt.Sprintf("hostgroups/%d", id), nil, nil, &group); err != nil {
			return nil, err
		}
		return &group, nil
	}

	var matches []domain.Hostgroup
	params := url.Values{"name": {identifier}}
	if err := g.api.Request(ctx, http.MethodGet, "hostgroups", nil, params, &matches); err != nil {
		return nil, err
	}
	group, err := resolveOne("hostgroup", identifier, matches)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Create registers a new hostgroup.
func (g *Hostgroups) Create(ctx context.Context, params HostgroupParams) error {
	g.logger.Debug("Creating hostgroup", zap.String("name", params.Name))
	return g.api.Request(ctx, http.MethodPost, "hostgroups", params.payload(), nil, nil)
}

// Update patches the hostgroup resolved from identifier.
func (g *Hostgroups) Update(ctx context.Context, identifier string, params HostgroupParams) error {
	group, err := g.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return g.api.Request(ctx, http.MethodPatch, fmt.Sprintf("hostgroups/%d", group.ID), params.payload(), nil, nil)
}

// Delete removes the hostgroup resolved from identifier.
func (g *Hostgroups) Delete(ctx context.Context, identifier string) error {
	group, err := g.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return g.api.Request(ctx, http.MethodDelete, fmt.Sprintf("hostgroups/%d", group.ID), nil, nil, nil)
}
