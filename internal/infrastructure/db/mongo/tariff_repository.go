package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/courierly/courier-api/internal/core/domain"
)

const collectionTariffs = "rate_tariffs"

type TariffRepository struct {
	col *mongo.Collection
}

func NewTariffRepository(db *mongo.Database) *TariffRepository {
	return &TariffRepository{col: db.Collection(collectionTariffs)}
}

// FindActive returns every active bracket matching the exact scope whose
// inclusive weight range covers weight. All matches are returned so the
// rate engine can detect overlapping brackets instead of trusting store
// order.
func (r *TariffRepository) FindActive(ctx context.Context, serviceType, originZone, destinationZone string, weight float64) ([]*domain.RateTariff, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"service_type":     serviceType,
		"origin_zone":      originZone,
		"destination_zone": destinationZone,
		"min_weight":       bson.M{"$lte": weight},
		"max_weight":       bson.M{"$gte": weight},
		"is_active":        true,
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tariffs []*domain.RateTariff
	if err := cur.All(ctx, &tariffs); err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *TariffRepository) List(ctx context.Context) ([]*domain.RateTariff, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tariffs []*domain.RateTariff
	if err := cur.All(ctx, &tariffs); err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *TariffRepository) FindByID(ctx context.Context, id string) (*domain.RateTariff, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.RateTariff
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTariffNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TariffRepository) Create(ctx context.Context, t *domain.RateTariff) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTariff
		}
		return err
	}
	return nil
}

func (r *TariffRepository) Update(ctx context.Context, t *domain.RateTariff) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTariff
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTariffNotFound
	}
	return nil
}

func (r *TariffRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTariffNotFound
	}
	return nil
}

// EnsureIndexes creates the uniqueness index on the bracket scope. Only
// (service, origin, destination, min_weight) is unique; full range
// non-overlap is not expressible as an index, which is why the rate engine
// checks for multiple matches at query time.
func (r *TariffRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "service_type", Value: 1},
			{Key: "origin_zone", Value: 1},
			{Key: "destination_zone", Value: 1},
			{Key: "min_weight", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
