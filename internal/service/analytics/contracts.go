package analytics

import (
	"context"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

// snapshotSource defines storage operations required by the business layer.
type snapshotSource interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}
