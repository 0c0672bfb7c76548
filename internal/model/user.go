package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account. The password hash is excluded from
// every JSON rendering, so responses and token claims never carry it.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	Name         string        `bson:"name"           json:"name"`
	Email        string        `bson:"email"          json:"email"`
	PasswordHash string        `bson:"password_hash"  json:"-"`
	CreatedAt    time.Time     `bson:"created_at"     json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"updatedAt"`
}

// Sanitized returns a copy with the password hash cleared, for embedding in
// token claims.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
