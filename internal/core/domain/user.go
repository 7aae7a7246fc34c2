package domain

import "time"

// User is an author account. Email is unique across all users; the Mongo
// unique index is the authoritative guard, the service pre-check is advisory.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Age       *int      `json:"age,omitempty" bson:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
