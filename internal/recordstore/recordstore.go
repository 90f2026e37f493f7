package recordstore

import (
	"context"

	"github.com/vbonduro/foodlog/internal/domain"
)

// RecordStore persists logged meals. The returned recordID is whatever
// identifier the backend assigned to the new record.
type RecordStore interface {
	Create(ctx context.Context, meal *domain.Meal) (recordID string, err error)
}
