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

// StackParams are the mutable fields of a stack.
type StackParams struct {
	Name        string
	Description string
	UnitIDs     []int
}

func (p StackParams) payload() map[string]any {
	return compact(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"units":       p.UnitIDs,
	})
}

// Stacks manages Cycleops stacks.
type Stacks struct {
	api    *client.Client
	logger *zap.Logger
}

// NewStacks initializes the stack service.
func NewStacks(api *client.Client, logger *zap.Logger) *Stacks {
	return &Stacks{api: api, logger: logger}
}

// List returns all stacks.
func (s *Stacks) List(ctx context.Context) ([]domain.Stack, error) {
	var stacks []domain.Stack
	if err := s.api.Request(ctx, http.MethodGet, "stacks", nil, nil, &stacks); err != nil {
		return nil, err
	}
	return stacks, nil
}

// Get resolves identifier (numeric id or name) to a single stack.
func (s *Stacks) Get(ctx context.Context, identifier string) (*domain.Stack, error) {
	if id, ok := numericID(identifier); ok {
		var stack domain.Stack
		if err := s.api.Request(ctx, http.MethodGet, fmt.Sprintf("stacks/%d", id), nil, nil, &stack); err != nil {
			return nil, err
		}
		return &stack, nil
	}

	var matches []domain.Stack
	params := url.Values{"name": {identifier}}
	if err := s.api.Request(ctx, http.MethodGet, "stacks", nil, params, &matches); err != nil {
		return nil, err
	}
	stack, err := resolveOne("stack", identifier, matches)
	if err != nil {
		return nil, err
	}
	return &stack, nil
}

// Create registers a new stack.
func (s *Stacks) Create(ctx context.Context, params StackParams) error {
	s.logger.Debug("Creating stack", zap.String("name", params.Name))
	return s.api.Request(ctx, http.MethodPost, "stacks", params.payload(), nil, nil)
}

// Update patches the stack resolved from identifier.
func (s *Stacks) Update(ctx context.Context, identifier string, params StackParams) error {
	stack, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("stacks/%d", stack.ID), params.payload(), nil, nil)
}

// Delete removes the stack resolved from identifier.
func (s *Stacks) Delete(ctx context.Context, identifier string) error {
	stack, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}
	return s.api.Request(ctx, http.MethodDelete, fmt.Sprintf("stacks/%d", stack.ID), nil, nil, nil)
}
