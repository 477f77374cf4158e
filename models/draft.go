package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DraftSnapshot is the persisted copy of a session's current draft, written on
// an explicit save action. One snapshot per session (upsert by session_id).
// Collection: drafts
type DraftSnapshot struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID  string             `bson:"session_id" json:"session_id"`
	TopicTitle string             `bson:"topic_title" json:"topic_title"`
	Blog       GeneratedBlog      `bson:"blog" json:"blog"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
