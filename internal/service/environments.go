package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"cycleops/internal/client"
	"cycleops/internal/domain"
)

// Environments lists the available environments.
type Environments struct {
	api    *client.Client
	logger *zap.Logger
}

// NewEnvironments initializes the environment service.
func NewEnvironments(api *client.Client, logger *zap.Logger) *Environments {
	return &Environments{api: api, logger: logger}
}

// List returns all environments.
func (e *Environments) List(ctx context.Context) ([]domain.Environment, error) {
	var environments []domain.Environment
	if err := e.api.Request(ctx, http.MethodGet, "environments", nil, nil, &environments); err != nil {
		return nil, err
	}
	return environments, nil
}
