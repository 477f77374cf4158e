package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trend-studio/models"
)

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection("settings")}
}

// UpsertBySession stores the session's publisher settings.
func (r *SettingsRepository) UpsertBySession(ctx context.Context, s *models.PublisherSettings) error {
	s.UpdatedAt = time.Now()

	filter := bson.M{"session_id": s.SessionID}
	update := bson.M{
		"$set": bson.M{
			"session_id":      s.SessionID,
			"blog_id":         s.BlogID,
			"oauth_client_id": s.OAuthClientID,
			"updated_at":      s.UpdatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindBySession returns the session's settings, mongo.ErrNoDocuments when unset.
func (r *SettingsRepository) FindBySession(ctx context.Context, sessionID string) (*models.PublisherSettings, error) {
	var s models.PublisherSettings
	if err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
