package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublisherSettings stores the Blogger target entered once via the settings
// step: the blog id and the OAuth client id. One document per session.
// Collection: settings
type PublisherSettings struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID     string             `bson:"session_id" json:"session_id"`
	BlogID        string             `bson:"blog_id" json:"blog_id"`
	OAuthClientID string             `bson:"oauth_client_id" json:"oauth_client_id"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
