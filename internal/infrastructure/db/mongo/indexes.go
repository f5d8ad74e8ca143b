package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes every collection relies on. Safe to run
// at every startup: Mongo treats index creation as idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexers := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewTariffRepository(db),
		NewShipmentRepository(db),
		NewEventRepository(db),
		NewCatalogRepository(db),
		NewAuthRepository(db),
	}

	for _, idx := range indexers {
		if err := idx.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
	return nil
}
