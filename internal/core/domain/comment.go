package domain

import "time"

// MaxCommentLength is the maximum comment content length in characters.
const MaxCommentLength = 1000

// Comment is a remark on a post. Both references are validated at creation
// time (post first, then user) and never re-checked afterwards. Comments are
// immutable once created; the only mutation is deletion.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Content   string    `json:"content" bson:"content"`
	PostID    string    `json:"postId" bson:"post_id"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
