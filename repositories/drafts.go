package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trend-studio/models"
)

type DraftRepository struct {
	col *mongo.Collection
}

func NewDraftRepository(db *mongo.Database) *DraftRepository {
	return &DraftRepository{col: db.Collection("drafts")}
}

// UpsertBySession stores the session's draft snapshot, one document per session.
func (r *DraftRepository) UpsertBySession(ctx context.Context, s *models.DraftSnapshot) error {
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	filter := bson.M{"session_id": s.SessionID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": s.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":  s.UpdatedAt,
			"session_id":  s.SessionID,
			"topic_title": s.TopicTitle,
			"blog":        s.Blog,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindBySession returns the session's saved snapshot.
func (r *DraftRepository) FindBySession(ctx context.Context, sessionID string) (*models.DraftSnapshot, error) {
	var s models.DraftSnapshot
	if err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteBySession removes the session's snapshot.
func (r *DraftRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
