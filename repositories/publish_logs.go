package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trend-studio/models"
)

type PublishLogRepository struct {
	col *mongo.Collection
}

func NewPublishLogRepository(db *mongo.Database) *PublishLogRepository {
	return &PublishLogRepository{col: db.Collection("publish_logs")}
}

func (r *PublishLogRepository) Insert(ctx context.Context, log *models.PublishLog) error {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	if log.CompletedAt.IsZero() {
		log.CompletedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, log)
	return err
}

// FindBySession returns the session's publish history, newest first.
func (r *PublishLogRepository) FindBySession(ctx context.Context, sessionID string) ([]models.PublishLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []models.PublishLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
