package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trend-studio/logger"
	"trend-studio/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, log *models.AILog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// Record satisfies the generator audit sink. Failures to persist an audit
// entry are logged but never surfaced to the caller.
func (r *AILogRepository) Record(ctx context.Context, log models.AILog) {
	if _, err := r.Insert(ctx, &log); err != nil {
		logger.WarnWithFields("failed to persist ai_log entry", logger.Fields{
			"operation": log.Operation,
			"error":     err.Error(),
		})
	}
}

// FindRecent returns the newest entries for the monitoring endpoint.
func (r *AILogRepository) FindRecent(ctx context.Context, limit int64) ([]models.AILog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "requested_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []models.AILog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
