package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"cycleops/internal/client"
	"cycleops/internal/domain"
)

// HostParams are the mutable fields of a host. Unset fields are omitted from
// the request payload.
type HostParams struct {
	Name          string
	IP            string
	EnvironmentID int
	JumpHost      string // "true", "false" or empty to leave unchanged
	HostgroupIDs  []int
}

func (p HostParams) payload() (map[string]any, error) {
	jumpHost := strings.ToLower(p.JumpHost)
	switch jumpHost {
	case "", "true", "false":
	default:
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("jump-host must be true or false, got %q", p.JumpHost),
		}
	}
	return compact(map[string]any{
		"name":        p.Name,
		"IP":          p.IP,
		"environment": p.EnvironmentID,
		"jump_host":   jumpHost,
		"hostgroups":  p.HostgroupIDs,
	}), nil
}

// Hosts manages Cycleops hosts.
type Hosts struct {
	api    *client.Client
	logger *zap.Logger
}

// NewHosts initializes the host service.
func NewHosts(api *client.Client, logger *zap.Logger) *Hosts {
	return &Hosts{api: api, logger: logger}
}

// List returns all hosts.
func (h *Hosts) List(ctx context.Context) ([]domain.Host, error) {
	var hosts []domain.Host
	if err := h.api.Request(ctx, http.MethodGet, "hosts", nil, nil, &hosts); err != nil {
		return nil, err
	}
	return hosts, nil
}

// Get resolves identifier (numeric id or name) to a single host.
func (h *Hosts) Get(ctx context.Context, identifier string) (*domain.Host, error) {
	if id, ok := numericID(identifier); ok {
		var host domain.Host
		if err := h.api.Request(ctx, http.MethodGet, fmt.Sprintf("hosts/%d", id), nil, nil, &host); err != nil {
			return nil, err
		}
		return &host, nil
	}

	var matches []domain.Host
	params := url.Values{"name": {identifier}}
	if err := h.api.Request(ctx, http.MethodGet, "hosts", nil, params, &matches); err != nil {
		return nil, err
	}
	host, err := resolveOne("host", identifier, matches)
	if err != nil {
		return nil, err
	}
	return &host, nil
}

// Create registers a new host.
func (h *Hosts) Create(ctx context.Context, params HostParams) error {
	payload, err := params.payload()
	if err != nil {
		return err
	}
	h.logger.Debug("Creating host", zap.String("name", params.Name))
	return h.api.Request(ctx, http.MethodPost, "hosts", payload, nil, nil)
}

// Update patches the host resolved from identifier.
func (h *Hosts) Update(ctx context.Context, identifier string, params HostParams) error {
	payload, err := params.payload()
	if err != nil {
		return err
	}
	host, err := h.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return h.api.Request(ctx, http.MethodPatch, fmt.Sprintf("hosts/%d", host.ID), payload, nil, nil)
}

// Delete removes the host resolved from identifier.
func (h *Hosts) Delete(ctx context.Context, identifier string) error {
	host, err := h.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return h.api.Request(ctx, http.MethodDelete, fmt.Sprintf("hosts/%d", host.ID), nil, nil, nil)
}
