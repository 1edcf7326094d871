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

// ServiceParams are the mutable scalar fields of a service. Variables travel
// separately as parsed assignments.
type ServiceParams struct {
	Name        string
	Description string
	UnitID      int
}

// ContainerParams describes one container entry inside a service's variables
// document.
type ContainerParams struct {
	Name  string
	Image string
	Ports []string
	Env   []string // KEY=VALUE pairs
}

// Services manages Cycleops services and their variables documents.
type Services struct {
	api    *client.Client
	logger *zap.Logger
}

// NewServices initializes the service-resource service.
func NewServices(api *client.Client, logger *zap.Logger) *Services {
	return &Services{api: api, logger: logger}
}

// List returns all services.
func (s *Services) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := s.api.Request(ctx, http.MethodGet, "services", nil, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Get resolves identifier (numeric id or name) to a single service.
func (s *Services) Get(ctx context.Context, identifier string) (*domain.Service, error) {
	if id, ok := numericID(identifier); ok {
		var svc domain.Service
		if err := s.api.Request(ctx, http.MethodGet, fmt.Sprintf("services/%d", id), nil, nil, &svc); err != nil {
			return nil, err
		}
		return &svc, nil
	}

	var matches []domain.Service
	params := url.Values{"name": {identifier}}
	if err := s.api.Request(ctx, http.MethodGet, "services", nil, params, &matches); err != nil {
		return nil, err
	}
	svc, err := resolveOne("service", identifier, matches)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Create registers a new service. vars are applied to an empty variables
// document.
func (s *Services) Create(ctx context.Context, params ServiceParams, vars []Assignment) error {
	variables, err := ApplyAssignments(nil, vars)
	if err != nil {
		return err
	}
	s.logger.Debug("Creating service", zap.String("name", params.Name))
	payload := compact(map[string]any{
		"name":        params.Name,
		"unit":        params.UnitID,
		"description": params.Description,
		"variables":   variables,
	})
	return s.api.Request(ctx, http.MethodPost, "services", payload, nil, nil)
}

// Update patches the service resolved from identifier. vars are merged into
// the service's current variables document, last write per path winning.
func (s *Services) Update(ctx context.Context, identifier string, params ServiceParams, vars []Assignment) error {
	svc, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}

	payload := compact(map[string]any{
		"name":        params.Name,
		"unit":        params.UnitID,
		"description": params.Description,
	})
	if len(vars) > 0 {
		variables, err := ApplyAssignments(svc.Variables, vars)
		if err != nil {
			return err
		}
		payload["variables"] = variables
	}

	return s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("services/%d", svc.ID), payload, nil, nil)
}

// Delete removes the service resolved from identifier.
func (s *Services) Delete(ctx context.Context, identifier string) error {
	svc, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return s.api.Request(ctx, http.MethodDelete, fmt.Sprintf("services/%d", svc.ID), nil, nil, nil)
}

// CreateContainer appends a container entry to the service's variables
// document and patches the service.
func (s *Services) CreateContainer(ctx context.Context, identifier string, params ContainerParams) error {
	assignments, err := containerAssignments(params)
	if err != nil {
		return err
	}

	svc, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}

	index := len(containersOf(svc))
	return s.patchContainer(ctx, svc, index, assignments)
}

// UpdateContainer locates a container by name inside the service's variables
// document, applies the given fields to it and patches the service.
func (s *Services) UpdateContainer(ctx context.Context, identifier string, params ContainerParams) error {
	assignments, err := containerAssignments(params)
	if err != nil {
		return err
	}

	svc, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}

	index := -1
	for i, entry := range containersOf(svc) {
		container, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, _ := container["name"].(string); name == params.Name {
			index = i
			break
		}
	}
	if index < 0 {
		return &domain.NotFoundError{
			Resource: "container",
			Message:  fmt.Sprintf("no match for %q in service %q", params.Name, identifier),
		}
	}

	return s.patchContainer(ctx, svc, index, assignments)
}

func (s *Services) patchContainer(ctx context.Context, svc *domain.Service, index int, assignments []Assignment) error {
	prefixed := make([]Assignment, len(assignments))
	for i, a := range assignments {
		prefixed[i] = Assignment{
			Path:  append([]any{"containers", index}, a.Path...),
			Value: a.Value,
		}
	}

	variables, err := ApplyAssignments(svc.Variables, prefixed)
	if err != nil {
		return err
	}

	payload := map[string]any{"variables": variables}
	return s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("services/%d", svc.ID), payload, nil, nil)
}

// containerAssignments translates container fields into assignments relative
// to a containers.<index> entry. Validation happens before any request.
func containerAssignments(params ContainerParams) ([]Assignment, error) {
	if params.Name == "" {
		return nil, &domain.ValidationError{Message: "container name must not be empty"}
	}

	assignments := []Assignment{{Path: []any{"name"}, Value: params.Name}}
	if params.Image != "" {
		assignments = append(assignments, Assignment{Path: []any{"image"}, Value: params.Image})
	}
	for i, port := range params.Ports {
		if strings.TrimSpace(port) == "" {
			return nil, &domain.ValidationError{Message: "port mapping must not be empty"}
		}
		assignments = append(assignments, Assignment{Path: []any{"ports", i}, Value: port})
	}
	for _, pair := range params.Env {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("environment entry %q must be in the form KEY=VALUE", pair),
			}
		}
		assignments = append(assignments, Assignment{Path: []any{"environment", key}, Value: value})
	}
	return assignments, nil
}

func containersOf(svc *domain.Service) []any {
	containers, _ := svc.Variables["containers"].([]any)
	return containers
}
