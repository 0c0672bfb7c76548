package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents a catalog entry. UserID records which account created
// it; no referential integrity with the users collection is enforced.
type Product struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name"          json:"name"`
	Price     float64       `bson:"price"         json:"price"`
	Category  string        `bson:"category"      json:"category"`
	Company   string        `bson:"company"       json:"company"`
	UserID    string        `bson:"user_id"       json:"userId"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updatedAt"`
}
