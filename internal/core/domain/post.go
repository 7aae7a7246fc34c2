package domain

import "time"

// Post is an article written by a user. UserID is validated against an
// existing user at creation time and is immutable afterwards, as is CreatedAt.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
