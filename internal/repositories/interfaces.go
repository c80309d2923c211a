package repositories

import (
	"context"

	"github.com/studyforge/scoring-service/internal/models"
)

// AttemptFilters narrows and pages attempt history queries.
type AttemptFilters struct {
	UserID string
	Limit  int
	Offset int
}

// AttemptRepository persists normalized attempt snapshots. The history is
// append-only; records are never updated once written.
type AttemptRepository interface {
	Create(ctx context.Context, record *models.AttemptRecord) error
	List(ctx context.Context, filters AttemptFilters) ([]*models.AttemptRecord, int64, error)
}
