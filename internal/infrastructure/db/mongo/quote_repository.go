package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/courierly/courier-api/internal/core/domain"
)

const collectionQuotes = "quote_requests"

type QuoteRepository struct {
	col *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{col: db.Collection(collectionQuotes)}
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.QuoteRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, q)
	return err
}

func (r *QuoteRepository) List(ctx context.Context) ([]*domain.QuoteRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var quotes []*domain.QuoteRequest
	if err := cur.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.QuoteRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, err
	}
	return &q, nil
}

// MarkProcessed flips is_processed and returns the updated document.
func (r *QuoteRepository) MarkProcessed(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var q domain.QuoteRequest
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_processed": true}},
		opts,
	).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *QuoteRepository) CountPending(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"is_processed": false})
}
