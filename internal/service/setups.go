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

// SetupParams are the mutable fields of a setup.
type SetupParams struct {
	Name          string
	StackID       int
	EnvironmentID int
	HostIDs       []int
	HostgroupIDs  []int
	ServiceIDs    []int
}

func (p SetupParams) payload() map[string]any {
	return compact(map[string]any{
		"name":        p.Name,
		"stack":       p.StackID,
		"environment": p.EnvironmentID,
		"hosts":       p.HostIDs,
		"hostgroups":  p.HostgroupIDs,
		"services":    p.ServiceIDs,
	})
}

// Setups manages Cycleops setups and their deployment jobs.
type Setups struct {
	api    *client.Client
	logger *zap.Logger
}

// NewSetups initializes the setup service.
func NewSetups(api *client.Client, logger *zap.Logger) *Setups {
	return &Setups{api: api, logger: logger}
}

// List returns all setups.
func (s *Setups) List(ctx context.Context) ([]domain.Setup, error) {
	var setups []domain.Setup
	if err := s.api.Request(ctx, http.MethodGet, "setups", nil, nil, &setups); err != nil {
		return nil, err
	}
	return setups, nil
}

// Get resolves identifier (numeric id or name) to a single setup.
func (s *Setups) Get(ctx context.Context, identifier string) (*domain.Setup, error) {
	if id, ok := numericID(identifier); ok {
		var setup domain.Setup
		if err := s.api.Request(ctx, http.MethodGet, fmt.Sprintf("setups/%d", id), nil, nil, &setup); err != nil {
			return nil, err
		}
		return &setup, nil
	}

	var matches []domain.Setup
	params := url.Values{"name": {identifier}}
	if err := s.api.Request(ctx, http.MethodGet, "setups", nil, params, &matches); err != nil {
		return nil, err
	}
	setup, err := resolveOne("setup", identifier, matches)
	if err != nil {
		return nil, err
	}
	return &setup, nil
}

// Create registers a new setup.
func (s *Setups) Create(ctx context.Context, params SetupParams) error {
	s.logger.Debug("Creating setup", zap.String("name", params.Name))
	return s.api.Request(ctx, http.MethodPost, "setups", params.payload(), nil, nil)
}

// Update patches the setup resolved from identifier.
func (s *Setups) Update(ctx context.Context, identifier string, params SetupParams) error {
	setup, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("setups/%d", setup.ID), params.payload(), nil, nil)
}

// Delete removes the setup resolved from identifier.
func (s *Setups) Delete(ctx context.Context, identifier string) error {
	setup, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return s.api.Request(ctx, http.MethodDelete, fmt.Sprintf("setups/%d", setup.ID), nil, nil, nil)
}

// Deploy queues a deployment job for the setup resolved from identifier and
// returns the created job.
func (s *Setups) Deploy(ctx context.Context, identifier string) (*domain.Job, error) {
	setup, err := s.Get(ctx, identifier)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"description": fmt.Sprintf("Deploying setup: %d", setup.ID),
		"type":        "Deployment",
		"setup":       setup.ID,
	}

	var job domain.Job
	if err := s.api.Request(ctx, http.MethodPost, "jobs", payload, nil, &job); err != nil {
		return nil, err
	}
	s.logger.Debug("Deployment queued", zap.Int("setup", setup.ID), zap.Int("job", job.ID))
	return &job, nil
}

// Job reads the current state of a deployment job. The client's view is
// read-only; only the remote service mutates jobs.
func (s *Setups) Job(ctx context.Context, id int) (*domain.Job, error) {
	var job domain.Job
	if err := s.api.Request(ctx, http.MethodGet, fmt.Sprintf("jobs/%d", id), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
