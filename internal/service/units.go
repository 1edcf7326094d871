package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"cycleops/internal/client"
	"cycleops/internal/domain"
)

// Units lists the available catalog units.
type Units struct {
	api    *client.Client
	logger *zap.Logger
}

// NewUnits initializes the unit service.
func NewUnits(api *client.Client, logger *zap.Logger) *Units {
	return &Units{api: api, logger: logger}
}

// List returns the available units. System units are internal to the
// platform and are filtered out.
func (u *Units) List(ctx context.Context) ([]domain.Unit, error) {
	var raw []domain.Unit
	if err := u.api.Request(ctx, http.MethodGet, "units", nil, nil, &raw); err != nil {
		return nil, err
	}

	units := make([]domain.Unit, 0, len(raw))
	for _, unit := range raw {
		if unit.TypeSlug == "system" {
			continue
		}
		units = append(units, unit)
	}
	return units, nil
}
