package repository

import (
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// orderServices lines found up with ids and fails on the first missing id.
func orderServices(found []models.Service, ids []string) ([]models.Service, error) {
	byID := make(map[string]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, id)
		}
		out = append(out, s)
	}
	return out, nil
}
