package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 10 * time.Minute

// SubmissionGuard suppresses rapid duplicate quote form submissions.
// Key format: quote_guard:<sha256(email|from|to)>, expiring after guardTTL.
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// IsDuplicate reports whether an identical submission was seen recently.
func (g *SubmissionGuard) IsDuplicate(ctx context.Context, email, shipFrom, shipTo string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(email, shipFrom, shipTo)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records a submission so identical ones are absorbed until guardTTL.
func (g *SubmissionGuard) Mark(ctx context.Context, email, shipFrom, shipTo string) error {
	return g.client.Set(ctx, g.key(email, shipFrom, shipTo), "1", guardTTL).Err()
}

func (g *SubmissionGuard) key(email, shipFrom, shipTo string) string {
	sum := sha256.Sum256([]byte(email + "|" + shipFrom + "|" + shipTo))
	return "quote_guard:" + hex.EncodeToString(sum[:])
}
