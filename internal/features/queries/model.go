package queries

import (
	"time"
)

// Record is one logged search or title lookup.
type Record struct {
	ID        string    `bson:"_id" json:"id" example:"5c0e8a7d-2b3f-4e1a-9d6c-7f8e9a0b1c2d"`
	Query     string    `bson:"query" json:"query" example:"batman"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
