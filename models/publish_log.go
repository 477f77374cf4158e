package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublishLog records one publish attempt against the blogging platform.
// Collection: publish_logs
type PublishLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID    string             `bson:"session_id" json:"session_id"`
	BlogID       string             `bson:"blog_id" json:"blog_id"`
	PostID       string             `bson:"post_id,omitempty" json:"post_id,omitempty"`
	PostURL      string             `bson:"post_url,omitempty" json:"post_url,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Labels       []string           `bson:"labels" json:"labels"`
	Success      bool               `bson:"success" json:"success"`
	ErrorMessage string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RequestedAt  time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt  time.Time          `bson:"completed_at" json:"completed_at"`
}
